package usecases

import (
	"time"

	"github.com/bengkellab/bengkel/internal/domain/sale"
)

// SaleDTO is the transport representation of an invoice.
type SaleDTO struct {
	ID             uint           `json:"id"`
	InvoiceNumber  string         `json:"invoice_number"`
	CustomerID     uint           `json:"customer_id"`
	SalesUserID    uint           `json:"sales_user_id"`
	Subtotal       float64        `json:"subtotal"`
	TaxAmount      float64        `json:"tax_amount"`
	DiscountAmount float64        `json:"discount_amount"`
	TotalAmount    float64        `json:"total_amount"`
	PaymentStatus  string         `json:"payment_status"`
	SaleDate       time.Time      `json:"sale_date"`
	Notes          string         `json:"notes,omitempty"`
	Items          []*SaleItemDTO `json:"items,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// SaleItemDTO is one product line on an invoice.
type SaleItemDTO struct {
	ID         uint    `json:"id"`
	ProductID  uint    `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

func toSaleDTO(s *sale.Sale) *SaleDTO {
	dto := &SaleDTO{
		ID:             s.ID(),
		InvoiceNumber:  s.InvoiceNumber(),
		CustomerID:     s.CustomerID(),
		SalesUserID:    s.SalesUserID(),
		Subtotal:       s.Subtotal(),
		TaxAmount:      s.TaxAmount(),
		DiscountAmount: s.DiscountAmount(),
		TotalAmount:    s.TotalAmount(),
		PaymentStatus:  s.PaymentStatus().String(),
		SaleDate:       s.SaleDate(),
		Notes:          s.Notes(),
		CreatedAt:      s.CreatedAt(),
		UpdatedAt:      s.UpdatedAt(),
	}
	for _, item := range s.Items() {
		dto.Items = append(dto.Items, &SaleItemDTO{
			ID:         item.ID(),
			ProductID:  item.ProductID(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}
	return dto
}

func toSaleDTOs(sales []*sale.Sale) []*SaleDTO {
	dtos := make([]*SaleDTO, 0, len(sales))
	for _, s := range sales {
		dtos = append(dtos, toSaleDTO(s))
	}
	return dtos
}
