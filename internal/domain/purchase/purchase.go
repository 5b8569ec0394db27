// Package purchase owns supplier orders used to restock the catalog. A
// purchase mirrors a sale on the supply side: line items snapshot the unit
// cost, the total is the sum of line totals, and receiving the order
// credits product stock.
package purchase

import (
	"fmt"
	"time"
)

// Status tracks a purchase order from placement to receipt.
type Status string

const (
	StatusOrdered   Status = "ordered"
	StatusReceived  Status = "received"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOrdered, StatusReceived, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsOrdered() bool   { return s == StatusOrdered }
func (s Status) IsReceived() bool  { return s == StatusReceived }
func (s Status) IsCancelled() bool { return s == StatusCancelled }

type Purchase struct {
	id             uint
	purchaseNumber string
	supplierName   string
	userID         uint
	totalAmount    float64
	status         Status
	purchaseDate   time.Time
	receivedAt     *time.Time
	notes          string
	createdAt      time.Time
	updatedAt      time.Time
	items          []*Item
}

// NewPurchase builds a supplier order from its line items. The total is
// the sum of line totals.
func NewPurchase(supplierName string, userID uint, items []*Item, notes string) (*Purchase, error) {
	if len(supplierName) == 0 {
		return nil, fmt.Errorf("supplier name is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("at least one item is required")
	}

	var total float64
	for _, item := range items {
		total += item.TotalPrice()
	}

	now := time.Now().UTC()
	return &Purchase{
		supplierName: supplierName,
		userID:       userID,
		totalAmount:  total,
		status:       StatusOrdered,
		purchaseDate: now,
		notes:        notes,
		createdAt:    now,
		updatedAt:    now,
		items:        items,
	}, nil
}

func ReconstructPurchase(
	id uint,
	purchaseNumber string,
	supplierName string,
	userID uint,
	totalAmount float64,
	status Status,
	purchaseDate time.Time,
	receivedAt *time.Time,
	notes string,
	createdAt, updatedAt time.Time,
) (*Purchase, error) {
	if id == 0 {
		return nil, fmt.Errorf("purchase ID cannot be zero")
	}
	if len(purchaseNumber) == 0 {
		return nil, fmt.Errorf("purchase number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Purchase{
		id:             id,
		purchaseNumber: purchaseNumber,
		supplierName:   supplierName,
		userID:         userID,
		totalAmount:    totalAmount,
		status:         status,
		purchaseDate:   purchaseDate,
		receivedAt:     receivedAt,
		notes:          notes,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		items:          []*Item{},
	}, nil
}

func (p *Purchase) ID() uint               { return p.id }
func (p *Purchase) PurchaseNumber() string { return p.purchaseNumber }
func (p *Purchase) SupplierName() string   { return p.supplierName }
func (p *Purchase) UserID() uint           { return p.userID }
func (p *Purchase) TotalAmount() float64   { return p.totalAmount }
func (p *Purchase) Status() Status         { return p.status }
func (p *Purchase) PurchaseDate() time.Time { return p.purchaseDate }
func (p *Purchase) ReceivedAt() *time.Time { return p.receivedAt }
func (p *Purchase) Notes() string          { return p.notes }
func (p *Purchase) CreatedAt() time.Time   { return p.createdAt }
func (p *Purchase) UpdatedAt() time.Time   { return p.updatedAt }
func (p *Purchase) Items() []*Item         { return p.items }

func (p *Purchase) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("purchase ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("purchase ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Purchase) SetPurchaseNumber(number string) error {
	if len(p.purchaseNumber) != 0 {
		return fmt.Errorf("purchase number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("purchase number is required")
	}
	p.purchaseNumber = number
	return nil
}

// SetItems replaces the loaded line items after reconstruction.
func (p *Purchase) SetItems(items []*Item) {
	if items == nil {
		items = []*Item{}
	}
	p.items = items
}

// MarkReceived records goods arrival. Stock is credited by the caller for
// each line item in the same transaction. Receiving is one-way.
func (p *Purchase) MarkReceived() error {
	if p.status.IsReceived() {
		return fmt.Errorf("purchase is already received")
	}
	if p.status.IsCancelled() {
		return fmt.Errorf("cannot receive a cancelled purchase")
	}

	now := time.Now().UTC()
	p.status = StatusReceived
	p.receivedAt = &now
	p.updatedAt = now
	return nil
}

func (p *Purchase) MarkCancelled() error {
	if p.status.IsReceived() {
		return fmt.Errorf("cannot cancel a received purchase")
	}
	p.status = StatusCancelled
	p.updatedAt = time.Now().UTC()
	return nil
}

func (p *Purchase) UpdateNotes(notes string) {
	p.notes = notes
	p.updatedAt = time.Now().UTC()
}
