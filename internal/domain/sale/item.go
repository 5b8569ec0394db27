package sale

import (
	"fmt"
	"time"
)

// Item is one product line on an invoice. The unit price is snapshotted
// from the catalog when the sale is created.
type Item struct {
	id         uint
	saleID     uint
	productID  uint
	quantity   int
	unitPrice  float64
	totalPrice float64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewItem(productID uint, quantity int, unitPrice float64) (*Item, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1")
	}
	if unitPrice < 0 {
		return nil, fmt.Errorf("unit price cannot be negative")
	}

	now := time.Now().UTC()
	return &Item{
		productID:  productID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: float64(quantity) * unitPrice,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructItem(
	id uint,
	saleID uint,
	productID uint,
	quantity int,
	unitPrice float64,
	totalPrice float64,
	createdAt, updatedAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}

	return &Item{
		id:         id,
		saleID:     saleID,
		productID:  productID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (i *Item) ID() uint             { return i.id }
func (i *Item) SaleID() uint         { return i.saleID }
func (i *Item) ProductID() uint      { return i.productID }
func (i *Item) Quantity() int        { return i.quantity }
func (i *Item) UnitPrice() float64   { return i.unitPrice }
func (i *Item) TotalPrice() float64  { return i.totalPrice }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Item) AttachToSale(saleID uint) error {
	if saleID == 0 {
		return fmt.Errorf("sale ID cannot be zero")
	}
	i.saleID = saleID
	return nil
}
