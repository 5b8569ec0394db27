package usecases

import "context"

// transactionManager runs a function inside a database transaction.
// Satisfied by db.TransactionManager.
type transactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
