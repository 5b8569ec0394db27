package product

import (
	"fmt"
	"time"
)

// Product is a catalog entry: a laptop part, accessory, or consumable that
// can be consumed by service tickets, sold on invoices, and restocked by
// purchases.
type Product struct {
	id            uint
	code          string
	name          string
	description   string
	category      Category
	price         float64
	cost          float64
	stockQuantity int
	minStockLevel int
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewProduct(
	code string,
	name string,
	description string,
	category Category,
	price float64,
	cost float64,
	stockQuantity int,
	minStockLevel int,
) (*Product, error) {
	if len(code) == 0 {
		return nil, fmt.Errorf("product code is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("product name is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if cost < 0 {
		return nil, fmt.Errorf("cost cannot be negative")
	}
	if stockQuantity < 0 {
		return nil, fmt.Errorf("stock quantity cannot be negative")
	}
	if minStockLevel < 0 {
		return nil, fmt.Errorf("minimum stock level cannot be negative")
	}

	now := time.Now().UTC()
	return &Product{
		code:          code,
		name:          name,
		description:   description,
		category:      category,
		price:         price,
		cost:          cost,
		stockQuantity: stockQuantity,
		minStockLevel: minStockLevel,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructProduct(
	id uint,
	code string,
	name string,
	description string,
	category Category,
	price float64,
	cost float64,
	stockQuantity int,
	minStockLevel int,
	status Status,
	createdAt, updatedAt time.Time,
) (*Product, error) {
	if id == 0 {
		return nil, fmt.Errorf("product ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("product code is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Product{
		id:            id,
		code:          code,
		name:          name,
		description:   description,
		category:      category,
		price:         price,
		cost:          cost,
		stockQuantity: stockQuantity,
		minStockLevel: minStockLevel,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (p *Product) ID() uint             { return p.id }
func (p *Product) Code() string         { return p.code }
func (p *Product) Name() string         { return p.name }
func (p *Product) Description() string  { return p.description }
func (p *Product) Category() Category   { return p.category }
func (p *Product) Price() float64       { return p.price }
func (p *Product) Cost() float64        { return p.cost }
func (p *Product) StockQuantity() int   { return p.stockQuantity }
func (p *Product) MinStockLevel() int   { return p.minStockLevel }
func (p *Product) Status() Status       { return p.status }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
func (p *Product) UpdatedAt() time.Time { return p.updatedAt }

func (p *Product) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("product ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("product ID cannot be zero")
	}
	p.id = id
	return nil
}

// IsLowStock reports whether on-hand stock has fallen to or below the
// configured minimum. Equality counts as low.
func (p *Product) IsLowStock() bool {
	return p.stockQuantity <= p.minStockLevel
}

func (p *Product) IsActive() bool {
	return p.status.IsActive()
}

// UpdateDetails replaces the descriptive fields of the product.
func (p *Product) UpdateDetails(code, name, description string, category Category) error {
	if len(code) == 0 {
		return fmt.Errorf("product code is required")
	}
	if len(name) == 0 {
		return fmt.Errorf("product name is required")
	}
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %s", category)
	}

	p.code = code
	p.name = name
	p.description = description
	p.category = category
	p.updatedAt = time.Now().UTC()
	return nil
}

// UpdatePricing replaces selling price and cost price.
func (p *Product) UpdatePricing(price, cost float64) error {
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}
	if cost < 0 {
		return fmt.Errorf("cost cannot be negative")
	}

	p.price = price
	p.cost = cost
	p.updatedAt = time.Now().UTC()
	return nil
}

// UpdateStockLevels replaces the stock counters directly, used by catalog
// management for manual adjustments.
func (p *Product) UpdateStockLevels(stockQuantity, minStockLevel int) error {
	if stockQuantity < 0 {
		return fmt.Errorf("stock quantity cannot be negative")
	}
	if minStockLevel < 0 {
		return fmt.Errorf("minimum stock level cannot be negative")
	}

	p.stockQuantity = stockQuantity
	p.minStockLevel = minStockLevel
	p.updatedAt = time.Now().UTC()
	return nil
}

// DecreaseStock debits on-hand stock when parts are consumed by a service
// ticket or sold on an invoice.
func (p *Product) DecreaseStock(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	if quantity > p.stockQuantity {
		return fmt.Errorf("insufficient stock: have %d, need %d", p.stockQuantity, quantity)
	}

	p.stockQuantity -= quantity
	p.updatedAt = time.Now().UTC()
	return nil
}

// IncreaseStock credits on-hand stock when a purchase is received.
func (p *Product) IncreaseStock(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	p.stockQuantity += quantity
	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *Product) Activate() {
	p.status = StatusActive
	p.updatedAt = time.Now().UTC()
}

func (p *Product) Deactivate() {
	p.status = StatusInactive
	p.updatedAt = time.Now().UTC()
}
