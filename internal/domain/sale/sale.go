// Package sale owns customer invoices and their product line items. The
// subtotal is the sum of line totals; the grand total is subtotal plus tax
// minus discount and is always derived, never caller-supplied.
package sale

import (
	"fmt"
	"time"
)

type Sale struct {
	id             uint
	invoiceNumber  string
	customerID     uint
	salesUserID    uint
	subtotal       float64
	taxAmount      float64
	discountAmount float64
	totalAmount    float64
	paymentStatus  PaymentStatus
	saleDate       time.Time
	notes          string
	createdAt      time.Time
	updatedAt      time.Time
	items          []*Item
}

// NewSale builds an invoice from its line items. At least one item is
// required; the subtotal and total are computed here.
func NewSale(
	customerID uint,
	salesUserID uint,
	items []*Item,
	taxAmount float64,
	discountAmount float64,
	notes string,
) (*Sale, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if salesUserID == 0 {
		return nil, fmt.Errorf("sales user ID is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("at least one item is required")
	}
	if taxAmount < 0 {
		return nil, fmt.Errorf("tax amount cannot be negative")
	}
	if discountAmount < 0 {
		return nil, fmt.Errorf("discount amount cannot be negative")
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.TotalPrice()
	}
	total := subtotal + taxAmount - discountAmount
	if total < 0 {
		return nil, fmt.Errorf("discount exceeds subtotal plus tax")
	}

	now := time.Now().UTC()
	return &Sale{
		customerID:     customerID,
		salesUserID:    salesUserID,
		subtotal:       subtotal,
		taxAmount:      taxAmount,
		discountAmount: discountAmount,
		totalAmount:    total,
		paymentStatus:  PaymentPending,
		saleDate:       now,
		notes:          notes,
		createdAt:      now,
		updatedAt:      now,
		items:          items,
	}, nil
}

func ReconstructSale(
	id uint,
	invoiceNumber string,
	customerID uint,
	salesUserID uint,
	subtotal float64,
	taxAmount float64,
	discountAmount float64,
	totalAmount float64,
	paymentStatus PaymentStatus,
	saleDate time.Time,
	notes string,
	createdAt, updatedAt time.Time,
) (*Sale, error) {
	if id == 0 {
		return nil, fmt.Errorf("sale ID cannot be zero")
	}
	if len(invoiceNumber) == 0 {
		return nil, fmt.Errorf("invoice number is required")
	}
	if !paymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", paymentStatus)
	}

	return &Sale{
		id:             id,
		invoiceNumber:  invoiceNumber,
		customerID:     customerID,
		salesUserID:    salesUserID,
		subtotal:       subtotal,
		taxAmount:      taxAmount,
		discountAmount: discountAmount,
		totalAmount:    totalAmount,
		paymentStatus:  paymentStatus,
		saleDate:       saleDate,
		notes:          notes,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		items:          []*Item{},
	}, nil
}

func (s *Sale) ID() uint                     { return s.id }
func (s *Sale) InvoiceNumber() string        { return s.invoiceNumber }
func (s *Sale) CustomerID() uint             { return s.customerID }
func (s *Sale) SalesUserID() uint            { return s.salesUserID }
func (s *Sale) Subtotal() float64            { return s.subtotal }
func (s *Sale) TaxAmount() float64           { return s.taxAmount }
func (s *Sale) DiscountAmount() float64      { return s.discountAmount }
func (s *Sale) TotalAmount() float64         { return s.totalAmount }
func (s *Sale) PaymentStatus() PaymentStatus { return s.paymentStatus }
func (s *Sale) SaleDate() time.Time          { return s.saleDate }
func (s *Sale) Notes() string                { return s.notes }
func (s *Sale) CreatedAt() time.Time         { return s.createdAt }
func (s *Sale) UpdatedAt() time.Time         { return s.updatedAt }
func (s *Sale) Items() []*Item               { return s.items }

func (s *Sale) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("sale ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("sale ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Sale) SetInvoiceNumber(number string) error {
	if len(s.invoiceNumber) != 0 {
		return fmt.Errorf("invoice number is already set")
	}
	if len(number) == 0 {
		return fmt.Errorf("invoice number is required")
	}
	s.invoiceNumber = number
	return nil
}

// SetItems replaces the loaded line items after reconstruction.
func (s *Sale) SetItems(items []*Item) {
	if items == nil {
		items = []*Item{}
	}
	s.items = items
}

// MarkPaid settles a pending invoice.
func (s *Sale) MarkPaid() error {
	if s.paymentStatus.IsCancelled() {
		return fmt.Errorf("cannot mark a cancelled sale as paid")
	}
	s.paymentStatus = PaymentPaid
	s.updatedAt = time.Now().UTC()
	return nil
}

// MarkCancelled voids the invoice. Stock already debited by the sale is
// not credited back.
func (s *Sale) MarkCancelled() error {
	if s.paymentStatus.IsPaid() {
		return fmt.Errorf("cannot cancel a paid sale")
	}
	s.paymentStatus = PaymentCancelled
	s.updatedAt = time.Now().UTC()
	return nil
}

func (s *Sale) UpdateNotes(notes string) {
	s.notes = notes
	s.updatedAt = time.Now().UTC()
}
