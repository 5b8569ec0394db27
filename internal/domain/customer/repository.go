package customer

import "context"

type Repository interface {
	Save(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	// Delete removes the customer; the schema cascades the delete to the
	// customer's service tickets and sales.
	Delete(ctx context.Context, customerID uint) error
	FindByID(ctx context.Context, customerID uint) (*Customer, error)
	Exists(ctx context.Context, customerID uint) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Customer, int64, error)
	Count(ctx context.Context) (int64, error)
}

type Filter struct {
	// Search matches name, phone, or email as a case-insensitive substring.
	Search   string
	Page     int
	PageSize int
}
