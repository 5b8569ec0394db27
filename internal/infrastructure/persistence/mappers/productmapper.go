package mappers

import (
	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
)

// ProductMapper handles the conversion between Product domain entities and
// persistence models.
type ProductMapper interface {
	ToModel(p *product.Product) *models.ProductModel
	ToDomain(model *models.ProductModel) (*product.Product, error)
}

type ProductMapperImpl struct{}

func NewProductMapper() ProductMapper {
	return &ProductMapperImpl{}
}

func (m *ProductMapperImpl) ToModel(p *product.Product) *models.ProductModel {
	return &models.ProductModel{
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
		CreatedAt:     p.CreatedAt().UnixMilli(),
		UpdatedAt:     p.UpdatedAt().UnixMilli(),
	}
}

func (m *ProductMapperImpl) ToDomain(model *models.ProductModel) (*product.Product, error) {
	return product.ReconstructProduct(
		model.ID,
		model.Code,
		model.Name,
		model.Description,
		product.Category(model.Category),
		model.Price,
		model.Cost,
		model.StockQuantity,
		model.MinStockLevel,
		product.Status(model.Status),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
