package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type GetServiceQuery struct {
	ServiceID uint
	// TechnicianID restricts visibility to tickets assigned to this
	// technician when set.
	TechnicianID *uint
}

type GetServiceUseCase struct {
	serviceRepo service.Repository
	logger      logger.Interface
}

func NewGetServiceUseCase(
	serviceRepo service.Repository,
	logger logger.Interface,
) *GetServiceUseCase {
	return &GetServiceUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *GetServiceUseCase) Execute(ctx context.Context, query GetServiceQuery) (*ServiceDTO, error) {
	if query.ServiceID == 0 {
		return nil, errors.NewValidationError("service ID is required")
	}

	found, err := uc.serviceRepo.FindByID(ctx, query.ServiceID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("service ticket not found")
	}

	if query.TechnicianID != nil {
		assigned := found.TechnicianID()
		if assigned == nil || *assigned != *query.TechnicianID {
			return nil, errors.NewForbiddenError("service ticket is not assigned to you")
		}
	}

	parts, err := uc.serviceRepo.FindPartsByServiceID(ctx, found.ID())
	if err != nil {
		return nil, err
	}
	found.SetParts(parts)

	return toServiceDTO(found), nil
}
