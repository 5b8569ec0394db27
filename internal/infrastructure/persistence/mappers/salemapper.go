package mappers

import (
	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
)

// SaleMapper handles the conversion between Sale domain entities and
// persistence models.
type SaleMapper interface {
	ToModel(s *sale.Sale) *models.SaleModel
	// ToDomain converts the invoice fields only. Line items are loaded
	// separately by the repository.
	ToDomain(model *models.SaleModel) (*sale.Sale, error)
	ItemToModel(item *sale.Item) *models.SaleItemModel
	ItemToDomain(model *models.SaleItemModel) (*sale.Item, error)
}

type SaleMapperImpl struct{}

func NewSaleMapper() SaleMapper {
	return &SaleMapperImpl{}
}

func (m *SaleMapperImpl) ToModel(s *sale.Sale) *models.SaleModel {
	return &models.SaleModel{
		ID:             s.ID(),
		InvoiceNumber:  s.InvoiceNumber(),
		CustomerID:     s.CustomerID(),
		SalesUserID:    s.SalesUserID(),
		Subtotal:       s.Subtotal(),
		TaxAmount:      s.TaxAmount(),
		DiscountAmount: s.DiscountAmount(),
		TotalAmount:    s.TotalAmount(),
		PaymentStatus:  s.PaymentStatus().String(),
		SaleDate:       s.SaleDate().UnixMilli(),
		Notes:          s.Notes(),
		CreatedAt:      s.CreatedAt().UnixMilli(),
		UpdatedAt:      s.UpdatedAt().UnixMilli(),
	}
}

func (m *SaleMapperImpl) ToDomain(model *models.SaleModel) (*sale.Sale, error) {
	return sale.ReconstructSale(
		model.ID,
		model.InvoiceNumber,
		model.CustomerID,
		model.SalesUserID,
		model.Subtotal,
		model.TaxAmount,
		model.DiscountAmount,
		model.TotalAmount,
		sale.PaymentStatus(model.PaymentStatus),
		millisToTime(model.SaleDate),
		model.Notes,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *SaleMapperImpl) ItemToModel(item *sale.Item) *models.SaleItemModel {
	return &models.SaleItemModel{
		ID:         item.ID(),
		SaleID:     item.SaleID(),
		ProductID:  item.ProductID(),
		Quantity:   item.Quantity(),
		UnitPrice:  item.UnitPrice(),
		TotalPrice: item.TotalPrice(),
		CreatedAt:  item.CreatedAt().UnixMilli(),
		UpdatedAt:  item.UpdatedAt().UnixMilli(),
	}
}

func (m *SaleMapperImpl) ItemToDomain(model *models.SaleItemModel) (*sale.Item, error) {
	return sale.ReconstructItem(
		model.ID,
		model.SaleID,
		model.ProductID,
		model.Quantity,
		model.UnitPrice,
		model.TotalPrice,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
