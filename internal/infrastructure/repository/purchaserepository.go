package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bengkellab/bengkel/internal/domain/purchase"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/mappers"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
	"github.com/bengkellab/bengkel/internal/shared/db"
)

type PurchaseRepository struct {
	db     *gorm.DB
	mapper mappers.PurchaseMapper
}

func NewPurchaseRepository(database *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{
		db:     database,
		mapper: mappers.NewPurchaseMapper(),
	}
}

// Save persists the purchase order and its line items.
func (r *PurchaseRepository) Save(ctx context.Context, p *purchase.Purchase) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save purchase: %w", err)
	}
	if err := p.SetID(model.ID); err != nil {
		return err
	}

	for _, item := range p.Items() {
		if err := item.AttachToPurchase(model.ID); err != nil {
			return err
		}
		itemModel := r.mapper.ItemToModel(item)
		if err := tx.Create(itemModel).Error; err != nil {
			return fmt.Errorf("failed to save purchase item: %w", err)
		}
		if err := item.SetID(itemModel.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *PurchaseRepository) Update(ctx context.Context, p *purchase.Purchase) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.PurchaseModel{}).
		Where("id = ?", model.ID).
		Select("status", "received_at", "notes", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update purchase: %w", result.Error)
	}

	return nil
}

func (r *PurchaseRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.PurchaseModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete purchase: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("purchase not found")
	}
	return nil
}

func (r *PurchaseRepository) FindByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	var model models.PurchaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find purchase: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PurchaseRepository) FindByPurchaseNumber(ctx context.Context, number string) (*purchase.Purchase, error) {
	var model models.PurchaseModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("purchase_number = ?", number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find purchase by number: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *PurchaseRepository) List(ctx context.Context, filter purchase.Filter) ([]*purchase.Purchase, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.PurchaseModel{}), filter)

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var purchaseModels []models.PurchaseModel
	if err := query.Find(&purchaseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	purchases := make([]*purchase.Purchase, len(purchaseModels))
	for i, model := range purchaseModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		purchases[i] = p
	}

	return purchases, nil
}

func (r *PurchaseRepository) Count(ctx context.Context, filter purchase.Filter) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := r.applyFilter(tx.Model(&models.PurchaseModel{}), filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	return count, nil
}

// NextSequence returns the latest purchase ID plus one. Must run inside the
// caller's transaction.
func (r *PurchaseRepository) NextSequence(ctx context.Context) (uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.PurchaseModel
	err := tx.Order("id DESC").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to get next purchase sequence: %w", err)
	}

	return model.ID + 1, nil
}

func (r *PurchaseRepository) FindItemsByPurchaseID(ctx context.Context, purchaseID uint) ([]*purchase.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var itemModels []models.PurchaseItemModel
	if err := tx.
		Where("purchase_id = ?", purchaseID).
		Order("id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load purchase items: %w", err)
	}

	items := make([]*purchase.Item, len(itemModels))
	for i, model := range itemModels {
		item, err := r.mapper.ItemToDomain(&model)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	return items, nil
}

func (r *PurchaseRepository) applyFilter(query *gorm.DB, filter purchase.Filter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("purchase_number LIKE ? OR supplier_name LIKE ?", pattern, pattern)
	}
	return query
}
