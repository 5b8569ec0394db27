package mappers

import (
	"github.com/bengkellab/bengkel/internal/domain/purchase"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
)

// PurchaseMapper handles the conversion between Purchase domain entities and
// persistence models.
type PurchaseMapper interface {
	ToModel(p *purchase.Purchase) *models.PurchaseModel
	// ToDomain converts the order fields only. Line items are loaded
	// separately by the repository.
	ToDomain(model *models.PurchaseModel) (*purchase.Purchase, error)
	ItemToModel(item *purchase.Item) *models.PurchaseItemModel
	ItemToDomain(model *models.PurchaseItemModel) (*purchase.Item, error)
}

type PurchaseMapperImpl struct{}

func NewPurchaseMapper() PurchaseMapper {
	return &PurchaseMapperImpl{}
}

func (m *PurchaseMapperImpl) ToModel(p *purchase.Purchase) *models.PurchaseModel {
	return &models.PurchaseModel{
		ID:             p.ID(),
		PurchaseNumber: p.PurchaseNumber(),
		SupplierName:   p.SupplierName(),
		UserID:         p.UserID(),
		TotalAmount:    p.TotalAmount(),
		Status:         p.Status().String(),
		PurchaseDate:   p.PurchaseDate().UnixMilli(),
		ReceivedAt:     timePtrToMillis(p.ReceivedAt()),
		Notes:          p.Notes(),
		CreatedAt:      p.CreatedAt().UnixMilli(),
		UpdatedAt:      p.UpdatedAt().UnixMilli(),
	}
}

func (m *PurchaseMapperImpl) ToDomain(model *models.PurchaseModel) (*purchase.Purchase, error) {
	return purchase.ReconstructPurchase(
		model.ID,
		model.PurchaseNumber,
		model.SupplierName,
		model.UserID,
		model.TotalAmount,
		purchase.Status(model.Status),
		millisToTime(model.PurchaseDate),
		millisPtrToTime(model.ReceivedAt),
		model.Notes,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *PurchaseMapperImpl) ItemToModel(item *purchase.Item) *models.PurchaseItemModel {
	return &models.PurchaseItemModel{
		ID:         item.ID(),
		PurchaseID: item.PurchaseID(),
		ProductID:  item.ProductID(),
		Quantity:   item.Quantity(),
		UnitPrice:  item.UnitPrice(),
		TotalPrice: item.TotalPrice(),
		CreatedAt:  item.CreatedAt().UnixMilli(),
		UpdatedAt:  item.UpdatedAt().UnixMilli(),
	}
}

func (m *PurchaseMapperImpl) ItemToDomain(model *models.PurchaseItemModel) (*purchase.Item, error) {
	return purchase.ReconstructItem(
		model.ID,
		model.PurchaseID,
		model.ProductID,
		model.Quantity,
		model.UnitPrice,
		model.TotalPrice,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
