package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type RemovePartCommand struct {
	ServiceID uint
	PartID    uint
}

// RemovePartUseCase deletes a part line from a ticket, credits the stock
// back, and re-derives the ticket costs, all in one transaction.
type RemovePartUseCase struct {
	serviceRepo service.Repository
	productRepo product.Repository
	txMgr       transactionManager
	logger      logger.Interface
}

func NewRemovePartUseCase(
	serviceRepo service.Repository,
	productRepo product.Repository,
	txMgr transactionManager,
	logger logger.Interface,
) *RemovePartUseCase {
	return &RemovePartUseCase{
		serviceRepo: serviceRepo,
		productRepo: productRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *RemovePartUseCase) Execute(ctx context.Context, cmd RemovePartCommand) (*ServiceDTO, error) {
	if cmd.ServiceID == 0 {
		return nil, errors.NewValidationError("service ID is required")
	}
	if cmd.PartID == 0 {
		return nil, errors.NewValidationError("part ID is required")
	}

	var updated *service.Service
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		svc, err := uc.serviceRepo.FindByID(txCtx, cmd.ServiceID)
		if err != nil {
			return err
		}
		if svc == nil {
			return errors.NewNotFoundError("service ticket not found")
		}

		parts, err := uc.serviceRepo.FindPartsByServiceID(txCtx, cmd.ServiceID)
		if err != nil {
			return err
		}
		svc.SetParts(parts)

		var removed *service.Part
		for _, p := range parts {
			if p.ID() == cmd.PartID {
				removed = p
				break
			}
		}
		if removed == nil {
			return errors.NewNotFoundError("part not found on service ticket")
		}

		if err := svc.RemovePart(cmd.PartID); err != nil {
			return errors.NewValidationError(err.Error())
		}

		prod, err := uc.productRepo.FindByID(txCtx, removed.ProductID())
		if err != nil {
			return err
		}
		if prod != nil {
			if err := prod.IncreaseStock(removed.Quantity()); err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.productRepo.Update(txCtx, prod); err != nil {
				return err
			}
		}

		if err := uc.serviceRepo.DeletePart(txCtx, cmd.PartID); err != nil {
			return err
		}
		if err := uc.serviceRepo.Update(txCtx, svc); err != nil {
			return err
		}

		updated = svc
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to remove part",
			"service_id", cmd.ServiceID,
			"part_id", cmd.PartID,
			"error", txErr,
		)
		return nil, txErr
	}

	return toServiceDTO(updated), nil
}
