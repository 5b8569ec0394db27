package sale

import (
	"context"
	"time"
)

// Repository defines the persistence contract for sales.
type Repository interface {
	// Save persists the sale with its line items in one unit.
	Save(ctx context.Context, sale *Sale) error
	Update(ctx context.Context, sale *Sale) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Sale, error)
	FindByInvoiceNumber(ctx context.Context, number string) (*Sale, error)
	List(ctx context.Context, filter Filter) ([]*Sale, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	// NextSequence returns the latest sale ID plus one, or 1 when empty.
	// Must run inside the caller's transaction.
	NextSequence(ctx context.Context) (uint, error)

	FindItemsBySaleID(ctx context.Context, saleID uint) ([]*Item, error)

	// SumPaidBetween totals paid invoices in [from, to) for reporting.
	SumPaidBetween(ctx context.Context, from, to time.Time) (float64, error)
	// FindRecent returns the newest invoices for the dashboard, optionally
	// scoped to one seller.
	FindRecent(ctx context.Context, limit int, salesUserID *uint) ([]*Sale, error)
}

// Filter holds the query criteria for listing sales. Search matches the
// invoice number and the owning customer's name.
type Filter struct {
	PaymentStatus PaymentStatus
	Search        string
	CustomerID    uint
	SalesUserID   uint
	Page          int
	PageSize      int
}
