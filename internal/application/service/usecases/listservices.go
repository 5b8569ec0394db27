package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type ListServicesQuery struct {
	Status     string
	Search     string
	CustomerID uint
	// TechnicianID scopes results to one technician's assignments; set by
	// the caller for technician users.
	TechnicianID *uint
	Page         int
	PageSize     int
}

type ListServicesResult struct {
	Services []*ServiceDTO
	Total    int64
	Page     int
	PageSize int
}

// ListServicesUseCase lists tickets newest first. Search matches the
// service number, device brand and model, and the owning customer's name
// or phone.
type ListServicesUseCase struct {
	serviceRepo service.Repository
	logger      logger.Interface
}

func NewListServicesUseCase(
	serviceRepo service.Repository,
	logger logger.Interface,
) *ListServicesUseCase {
	return &ListServicesUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *ListServicesUseCase) Execute(ctx context.Context, query ListServicesQuery) (*ListServicesResult, error) {
	if query.Status != "" && !service.Status(query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status: " + query.Status)
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := service.Filter{
		Status:       service.Status(query.Status),
		Search:       query.Search,
		CustomerID:   query.CustomerID,
		TechnicianID: query.TechnicianID,
		Page:         p.Page,
		PageSize:     p.PageSize,
	}

	total, err := uc.serviceRepo.Count(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count service tickets", "error", err)
		return nil, err
	}

	services, err := uc.serviceRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list service tickets", "error", err)
		return nil, err
	}

	return &ListServicesResult{
		Services: toServiceDTOs(services),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
