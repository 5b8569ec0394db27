package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type DeleteServiceCommand struct {
	ServiceID uint
}

// DeleteServiceUseCase hard-deletes a ticket. The schema cascades the
// delete to its part line items. There is no undo.
type DeleteServiceUseCase struct {
	serviceRepo service.Repository
	logger      logger.Interface
}

func NewDeleteServiceUseCase(
	serviceRepo service.Repository,
	logger logger.Interface,
) *DeleteServiceUseCase {
	return &DeleteServiceUseCase{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

func (uc *DeleteServiceUseCase) Execute(ctx context.Context, cmd DeleteServiceCommand) error {
	if cmd.ServiceID == 0 {
		return errors.NewValidationError("service ID is required")
	}

	existing, err := uc.serviceRepo.FindByID(ctx, cmd.ServiceID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("service ticket not found")
	}

	if err := uc.serviceRepo.Delete(ctx, cmd.ServiceID); err != nil {
		uc.logger.Errorw("failed to delete service ticket", "service_id", cmd.ServiceID, "error", err)
		return err
	}

	uc.logger.Infow("service ticket deleted",
		"service_id", cmd.ServiceID,
		"service_number", existing.ServiceNumber(),
	)
	return nil
}
