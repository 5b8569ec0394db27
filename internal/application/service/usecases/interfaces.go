package usecases

import "context"

// transactionManager runs a function inside a database transaction so that
// number generation, stock movement, and persistence commit atomically.
// Satisfied by db.TransactionManager.
type transactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
