package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/mappers"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
	"github.com/bengkellab/bengkel/internal/shared/db"
)

// lowStockCondition matches products whose stock has fallen to or below
// their minimum level.
const lowStockCondition = "stock_quantity <= min_stock_level"

type ProductRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductRepository(database *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db:     database,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepository) Save(ctx context.Context, p *product.Product) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}

	return p.SetID(model.ID)
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ProductModel{}).
		Where("id = ?", model.ID).
		Select("code", "name", "description", "category", "price", "cost",
			"stock_quantity", "min_stock_level", "status", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, productID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ProductModel{}, productID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, productID uint) (*product.Product, error) {
	var model models.ProductModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProductRepository) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	var model models.ProductModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("code = ?", code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by code: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProductRepository) List(ctx context.Context, filter product.Filter) ([]*product.Product, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ProductModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("code LIKE ? OR name LIKE ?", pattern, pattern)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.LowStock {
		query = query.Where(lowStockCondition)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var productModels []models.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products, err := r.toDomainSlice(productModels)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepository) FindActiveLowStock(ctx context.Context, limit int) ([]*product.Product, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.
		Where("status = ?", product.StatusActive.String()).
		Where(lowStockCondition).
		Order("stock_quantity ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var productModels []models.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	return r.toDomainSlice(productModels)
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.ProductModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

func (r *ProductRepository) CountLowStock(ctx context.Context) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ProductModel{}).
		Where("status = ?", product.StatusActive.String()).
		Where(lowStockCondition).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count low stock products: %w", err)
	}

	return count, nil
}

func (r *ProductRepository) toDomainSlice(productModels []models.ProductModel) ([]*product.Product, error) {
	products := make([]*product.Product, len(productModels))
	for i, model := range productModels {
		p, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		products[i] = p
	}
	return products, nil
}
