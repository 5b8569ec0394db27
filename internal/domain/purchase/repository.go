package purchase

import "context"

// Repository defines the persistence contract for purchase orders.
type Repository interface {
	Save(ctx context.Context, purchase *Purchase) error
	Update(ctx context.Context, purchase *Purchase) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Purchase, error)
	FindByPurchaseNumber(ctx context.Context, number string) (*Purchase, error)
	List(ctx context.Context, filter Filter) ([]*Purchase, error)
	Count(ctx context.Context, filter Filter) (int64, error)
	// NextSequence returns the latest purchase ID plus one, or 1 when
	// empty. Must run inside the caller's transaction.
	NextSequence(ctx context.Context) (uint, error)

	FindItemsByPurchaseID(ctx context.Context, purchaseID uint) ([]*Item, error)
}

// Filter holds the query criteria for listing purchases. Search matches
// the purchase number and supplier name.
type Filter struct {
	Status   Status
	Search   string
	Page     int
	PageSize int
}
