package service

import (
	"fmt"
	"time"
)

// Part is a line item recording one product consumed by a service ticket.
// The unit price is a snapshot of the product price at the time of use, so
// later catalog price changes never alter a ticket's history.
type Part struct {
	id         uint
	serviceID  uint
	productID  uint
	quantity   int
	unitPrice  float64
	totalPrice float64
	createdAt  time.Time
	updatedAt  time.Time
}

func NewPart(productID uint, quantity int, unitPrice float64) (*Part, error) {
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
	return &Part{
		productID:  productID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: float64(quantity) * unitPrice,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructPart(
	id uint,
	serviceID uint,
	productID uint,
	quantity int,
	unitPrice float64,
	totalPrice float64,
	createdAt, updatedAt time.Time,
) (*Part, error) {
	if id == 0 {
		return nil, fmt.Errorf("part ID cannot be zero")
	}
	if productID == 0 {
		return nil, fmt.Errorf("product ID is required")
	}

	return &Part{
		id:         id,
		serviceID:  serviceID,
		productID:  productID,
		quantity:   quantity,
		unitPrice:  unitPrice,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (p *Part) ID() uint            { return p.id }
func (p *Part) ServiceID() uint     { return p.serviceID }
func (p *Part) ProductID() uint     { return p.productID }
func (p *Part) Quantity() int       { return p.quantity }
func (p *Part) UnitPrice() float64  { return p.unitPrice }
func (p *Part) TotalPrice() float64 { return p.totalPrice }
func (p *Part) CreatedAt() time.Time { return p.createdAt }
func (p *Part) UpdatedAt() time.Time { return p.updatedAt }

func (p *Part) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("part ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("part ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Part) AttachToService(serviceID uint) error {
	if serviceID == 0 {
		return fmt.Errorf("service ID cannot be zero")
	}
	p.serviceID = serviceID
	return nil
}
