package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/mappers"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
	"github.com/bengkellab/bengkel/internal/shared/db"
)

type SaleRepository struct {
	db     *gorm.DB
	mapper mappers.SaleMapper
}

func NewSaleRepository(database *gorm.DB) *SaleRepository {
	return &SaleRepository{
		db:     database,
		mapper: mappers.NewSaleMapper(),
	}
}

// Save persists the sale and its line items. Callers run it inside a
// transaction together with the stock debits.
func (r *SaleRepository) Save(ctx context.Context, s *sale.Sale) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save sale: %w", err)
	}
	if err := s.SetID(model.ID); err != nil {
		return err
	}

	for _, item := range s.Items() {
		if err := item.AttachToSale(model.ID); err != nil {
			return err
		}
		itemModel := r.mapper.ItemToModel(item)
		if err := tx.Create(itemModel).Error; err != nil {
			return fmt.Errorf("failed to save sale item: %w", err)
		}
		if err := item.SetID(itemModel.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SaleModel{}).
		Where("id = ?", model.ID).
		Select("payment_status", "notes", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update sale: %w", result.Error)
	}

	return nil
}

func (r *SaleRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.SaleModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sale: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("sale not found")
	}
	return nil
}

func (r *SaleRepository) FindByID(ctx context.Context, id uint) (*sale.Sale, error) {
	var model models.SaleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SaleRepository) FindByInvoiceNumber(ctx context.Context, number string) (*sale.Sale, error) {
	var model models.SaleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("invoice_number = ?", number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sale by invoice number: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SaleRepository) List(ctx context.Context, filter sale.Filter) ([]*sale.Sale, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.SaleModel{}), filter)

	query = query.Order("sales.created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var saleModels []models.SaleModel
	if err := query.Find(&saleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return r.toDomainSlice(saleModels)
}

func (r *SaleRepository) Count(ctx context.Context, filter sale.Filter) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := r.applyFilter(tx.Model(&models.SaleModel{}), filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}

	return count, nil
}

// NextSequence returns the latest sale ID plus one. Must run inside the
// caller's transaction.
func (r *SaleRepository) NextSequence(ctx context.Context) (uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.SaleModel
	err := tx.Order("id DESC").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to get next sale sequence: %w", err)
	}

	return model.ID + 1, nil
}

func (r *SaleRepository) FindItemsBySaleID(ctx context.Context, saleID uint) ([]*sale.Item, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var itemModels []models.SaleItemModel
	if err := tx.
		Where("sale_id = ?", saleID).
		Order("id ASC").
		Find(&itemModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load sale items: %w", err)
	}

	items := make([]*sale.Item, len(itemModels))
	for i, model := range itemModels {
		item, err := r.mapper.ItemToDomain(&model)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	return items, nil
}

func (r *SaleRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (float64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total float64
	if err := tx.
		Model(&models.SaleModel{}).
		Where("payment_status = ?", sale.PaymentPaid.String()).
		Where("sale_date >= ? AND sale_date < ?", from.UnixMilli(), to.UnixMilli()).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum paid sales: %w", err)
	}

	return total, nil
}

func (r *SaleRepository) FindRecent(ctx context.Context, limit int, salesUserID *uint) ([]*sale.Sale, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.SaleModel{})
	if salesUserID != nil {
		query = query.Where("sales_user_id = ?", *salesUserID)
	}

	var saleModels []models.SaleModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&saleModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent sales: %w", err)
	}

	return r.toDomainSlice(saleModels)
}

func (r *SaleRepository) applyFilter(query *gorm.DB, filter sale.Filter) *gorm.DB {
	if filter.PaymentStatus != "" {
		query = query.Where("sales.payment_status = ?", filter.PaymentStatus.String())
	}
	if filter.CustomerID != 0 {
		query = query.Where("sales.customer_id = ?", filter.CustomerID)
	}
	if filter.SalesUserID != 0 {
		query = query.Where("sales.sales_user_id = ?", filter.SalesUserID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			Joins("JOIN customers ON customers.id = sales.customer_id").
			Where("sales.invoice_number LIKE ? OR customers.name LIKE ?", pattern, pattern)
	}
	return query
}

func (r *SaleRepository) toDomainSlice(saleModels []models.SaleModel) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, len(saleModels))
	for i, model := range saleModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		sales[i] = s
	}
	return sales, nil
}
