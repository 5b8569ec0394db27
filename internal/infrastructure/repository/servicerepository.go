package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/mappers"
	"github.com/bengkellab/bengkel/internal/infrastructure/persistence/models"
	"github.com/bengkellab/bengkel/internal/shared/db"
)

type ServiceRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceMapper
}

func NewServiceRepository(database *gorm.DB) *ServiceRepository {
	return &ServiceRepository{
		db:     database,
		mapper: mappers.NewServiceMapper(),
	}
}

func (r *ServiceRepository) Save(ctx context.Context, svc *service.Service) error {
	model := r.mapper.ToModel(svc)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save service: %w", err)
	}

	return svc.SetID(model.ID)
}

func (r *ServiceRepository) Update(ctx context.Context, svc *service.Service) error {
	model := r.mapper.ToModel(svc)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ServiceModel{}).
		Where("id = ?", model.ID).
		Select("technician_id", "laptop_brand", "laptop_model", "laptop_serial",
			"initial_complaint", "diagnosis", "repair_notes", "status",
			"service_cost", "parts_cost", "total_cost", "customer_approved",
			"completed_at", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update service: %w", result.Error)
	}

	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ServiceModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service not found")
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, id uint) (*service.Service, error) {
	var model models.ServiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find service: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServiceRepository) FindByServiceNumber(ctx context.Context, number string) (*service.Service, error) {
	var model models.ServiceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("service_number = ?", number).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find service by number: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServiceRepository) List(ctx context.Context, filter service.Filter) ([]*service.Service, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyFilter(tx.Model(&models.ServiceModel{}), filter)

	query = query.Order("services.created_at DESC")
	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var serviceModels []models.ServiceModel
	if err := query.Find(&serviceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return r.toDomainSlice(serviceModels)
}

func (r *ServiceRepository) Count(ctx context.Context, filter service.Filter) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := r.applyFilter(tx.Model(&models.ServiceModel{}), filter).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}

	return count, nil
}

// NextSequence returns the ID of the most recently created ticket plus one.
// Must run inside the caller's transaction so concurrent creators are
// serialized by the unique index on service_number.
func (r *ServiceRepository) NextSequence(ctx context.Context) (uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.ServiceModel
	err := tx.Order("id DESC").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to get next service sequence: %w", err)
	}

	return model.ID + 1, nil
}

func (r *ServiceRepository) SavePart(ctx context.Context, part *service.Part) error {
	model := r.mapper.PartToModel(part)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save service part: %w", err)
	}

	return part.SetID(model.ID)
}

func (r *ServiceRepository) DeletePart(ctx context.Context, partID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.ServicePartModel{}, partID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service part: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service part not found")
	}
	return nil
}

func (r *ServiceRepository) FindPartsByServiceID(ctx context.Context, serviceID uint) ([]*service.Part, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var partModels []models.ServicePartModel
	if err := tx.
		Where("service_id = ?", serviceID).
		Order("id ASC").
		Find(&partModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load service parts: %w", err)
	}

	parts := make([]*service.Part, len(partModels))
	for i, model := range partModels {
		p, err := r.mapper.PartToDomain(&model)
		if err != nil {
			return nil, err
		}
		parts[i] = p
	}

	return parts, nil
}

func (r *ServiceRepository) CountByStatus(ctx context.Context, status service.Status) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.ServiceModel{}).
		Where("status = ?", status.String()).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count services by status: %w", err)
	}

	return count, nil
}

func (r *ServiceRepository) FindRecent(ctx context.Context, limit int, technicianID *uint) ([]*service.Service, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.ServiceModel{})
	if technicianID != nil {
		query = query.Where("technician_id = ?", *technicianID)
	}

	var serviceModels []models.ServiceModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&serviceModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load recent services: %w", err)
	}

	return r.toDomainSlice(serviceModels)
}

// applyFilter builds the WHERE clause for List and Count. The search term
// also matches the owning customer's name and phone, which needs a join.
func (r *ServiceRepository) applyFilter(query *gorm.DB, filter service.Filter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("services.status = ?", filter.Status.String())
	}
	if filter.CustomerID != 0 {
		query = query.Where("services.customer_id = ?", filter.CustomerID)
	}
	if filter.TechnicianID != nil {
		query = query.Where("services.technician_id = ?", *filter.TechnicianID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			Joins("JOIN customers ON customers.id = services.customer_id").
			Where("services.service_number LIKE ? OR services.laptop_brand LIKE ? OR services.laptop_model LIKE ? OR customers.name LIKE ? OR customers.phone LIKE ?",
				pattern, pattern, pattern, pattern, pattern)
	}
	return query
}

func (r *ServiceRepository) toDomainSlice(serviceModels []models.ServiceModel) ([]*service.Service, error) {
	services := make([]*service.Service, len(serviceModels))
	for i, model := range serviceModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		services[i] = s
	}
	return services, nil
}
