package usecases

import (
	"time"

	"github.com/bengkellab/bengkel/internal/domain/purchase"
)

// PurchaseDTO is the transport representation of a supplier order.
type PurchaseDTO struct {
	ID             uint               `json:"id"`
	PurchaseNumber string             `json:"purchase_number"`
	SupplierName   string             `json:"supplier_name"`
	UserID         uint               `json:"user_id"`
	TotalAmount    float64            `json:"total_amount"`
	Status         string             `json:"status"`
	PurchaseDate   time.Time          `json:"purchase_date"`
	ReceivedAt     *time.Time         `json:"received_at,omitempty"`
	Notes          string             `json:"notes,omitempty"`
	Items          []*PurchaseItemDTO `json:"items,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// PurchaseItemDTO is one product line on a purchase order.
type PurchaseItemDTO struct {
	ID         uint    `json:"id"`
	ProductID  uint    `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

func toPurchaseDTO(p *purchase.Purchase) *PurchaseDTO {
	dto := &PurchaseDTO{
		ID:             p.ID(),
		PurchaseNumber: p.PurchaseNumber(),
		SupplierName:   p.SupplierName(),
		UserID:         p.UserID(),
		TotalAmount:    p.TotalAmount(),
		Status:         p.Status().String(),
		PurchaseDate:   p.PurchaseDate(),
		ReceivedAt:     p.ReceivedAt(),
		Notes:          p.Notes(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
	for _, item := range p.Items() {
		dto.Items = append(dto.Items, &PurchaseItemDTO{
			ID:         item.ID(),
			ProductID:  item.ProductID(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}
	return dto
}

func toPurchaseDTOs(purchases []*purchase.Purchase) []*PurchaseDTO {
	dtos := make([]*PurchaseDTO, 0, len(purchases))
	for _, p := range purchases {
		dtos = append(dtos, toPurchaseDTO(p))
	}
	return dtos
}
