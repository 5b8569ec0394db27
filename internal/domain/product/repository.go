package product

import "context"

type Repository interface {
	Save(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, productID uint) error
	FindByID(ctx context.Context, productID uint) (*Product, error)
	FindByCode(ctx context.Context, code string) (*Product, error)
	List(ctx context.Context, filter Filter) ([]*Product, int64, error)
	// FindActiveLowStock returns active products whose stock has reached
	// their minimum level, ordered by stock quantity ascending. limit <= 0
	// returns all.
	FindActiveLowStock(ctx context.Context, limit int) ([]*Product, error)
	Count(ctx context.Context) (int64, error)
	CountLowStock(ctx context.Context) (int64, error)
}

type Filter struct {
	// Search matches code or name as a case-insensitive substring.
	Search   string
	Category *Category
	Status   *Status
	LowStock bool
	Page     int
	PageSize int
}
