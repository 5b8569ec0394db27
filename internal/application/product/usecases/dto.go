package usecases

import (
	"time"

	"github.com/bengkellab/bengkel/internal/domain/product"
)

// ProductDTO is the transport representation of a catalog product.
type ProductDTO struct {
	ID            uint      `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Cost          float64   `json:"cost"`
	StockQuantity int       `json:"stock_quantity"`
	MinStockLevel int       `json:"min_stock_level"`
	Status        string    `json:"status"`
	LowStock      bool      `json:"low_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func toProductDTO(p *product.Product) *ProductDTO {
	return &ProductDTO{
		ID:            p.ID(),
		Code:          p.Code(),
		Name:          p.Name(),
		Description:   p.Description(),
		Category:      p.Category().String(),
		Price:         p.Price(),
		Cost:          p.Cost(),
		StockQuantity: p.StockQuantity(),
		MinStockLevel: p.MinStockLevel(),
		Status:        p.Status().String(),
		LowStock:      p.IsLowStock(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func toProductDTOs(products []*product.Product) []*ProductDTO {
	dtos := make([]*ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toProductDTO(p))
	}
	return dtos
}
