package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type AddPartCommand struct {
	ServiceID uint
	ProductID uint
	Quantity  int
}

// AddPartUseCase consumes a catalog product on a ticket. The unit price is
// snapshotted from the product at time of use. Stock debit, the part row,
// and the recomputed ticket costs commit in one transaction.
type AddPartUseCase struct {
	serviceRepo service.Repository
	productRepo product.Repository
	txMgr       transactionManager
	logger      logger.Interface
}

func NewAddPartUseCase(
	serviceRepo service.Repository,
	productRepo product.Repository,
	txMgr transactionManager,
	logger logger.Interface,
) *AddPartUseCase {
	return &AddPartUseCase{
		serviceRepo: serviceRepo,
		productRepo: productRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *AddPartUseCase) Execute(ctx context.Context, cmd AddPartCommand) (*ServiceDTO, error) {
	if cmd.ServiceID == 0 {
		return nil, errors.NewValidationError("service ID is required")
	}
	if cmd.ProductID == 0 {
		return nil, errors.NewValidationError("product ID is required")
	}
	if cmd.Quantity < 1 {
		return nil, errors.NewValidationError("quantity must be at least 1")
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

		prod, err := uc.productRepo.FindByID(txCtx, cmd.ProductID)
		if err != nil {
			return err
		}
		if prod == nil {
			return errors.NewReferenceError("product does not exist")
		}
		if !prod.IsActive() {
			return errors.NewValidationError("product is inactive")
		}

		if err := prod.DecreaseStock(cmd.Quantity); err != nil {
			return errors.NewValidationError(err.Error())
		}

		part, err := service.NewPart(prod.ID(), cmd.Quantity, prod.Price())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := part.AttachToService(svc.ID()); err != nil {
			return errors.NewInternalError(err.Error())
		}
		if err := svc.AddPart(part); err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.serviceRepo.SavePart(txCtx, part); err != nil {
			return err
		}
		if err := uc.productRepo.Update(txCtx, prod); err != nil {
			return err
		}
		if err := uc.serviceRepo.Update(txCtx, svc); err != nil {
			return err
		}

		updated = svc
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to add part",
			"service_id", cmd.ServiceID,
			"product_id", cmd.ProductID,
			"error", txErr,
		)
		return nil, txErr
	}

	uc.logger.Infow("part added to service ticket",
		"service_id", cmd.ServiceID,
		"product_id", cmd.ProductID,
		"quantity", cmd.Quantity,
	)
	return toServiceDTO(updated), nil
}
