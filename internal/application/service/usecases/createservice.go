package usecases

import (
	"context"
	"time"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/domain/user"
	"github.com/bengkellab/bengkel/internal/shared/constants"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/identifier"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type CreateServiceCommand struct {
	CustomerID       uint
	TechnicianID     *uint
	LaptopBrand      string
	LaptopModel      string
	LaptopSerial     string
	InitialComplaint string
	ServiceCost      float64
}

// CreateServiceUseCase registers a ticket at intake. The service number is
// generated from the next sequence inside the same transaction as the
// insert, with the unique index as a backstop against concurrent intakes.
type CreateServiceUseCase struct {
	serviceRepo  service.Repository
	customerRepo customer.Repository
	userRepo     user.Repository
	txMgr        transactionManager
	logger       logger.Interface
}

func NewCreateServiceUseCase(
	serviceRepo service.Repository,
	customerRepo customer.Repository,
	userRepo user.Repository,
	txMgr transactionManager,
	logger logger.Interface,
) *CreateServiceUseCase {
	return &CreateServiceUseCase{
		serviceRepo:  serviceRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreateServiceUseCase) Execute(ctx context.Context, cmd CreateServiceCommand) (*ServiceDTO, error) {
	uc.logger.Infow("creating service ticket", "customer_id", cmd.CustomerID)

	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	exists, err := uc.customerRepo.Exists(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NewReferenceError("customer does not exist")
	}

	if cmd.TechnicianID != nil {
		if err := uc.validateTechnician(ctx, *cmd.TechnicianID); err != nil {
			return nil, err
		}
	}

	newService, err := service.NewService(
		cmd.CustomerID,
		cmd.TechnicianID,
		cmd.LaptopBrand,
		cmd.LaptopModel,
		cmd.LaptopSerial,
		cmd.InitialComplaint,
		cmd.ServiceCost,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		seq, err := uc.serviceRepo.NextSequence(txCtx)
		if err != nil {
			return err
		}
		number := identifier.Format(constants.ServiceNumberPrefix, time.Now(), seq)
		if err := newService.SetServiceNumber(number); err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.serviceRepo.Save(txCtx, newService)
	})
	if txErr != nil {
		if errors.IsDuplicateError(txErr) {
			return nil, errors.NewConflictError("service number already exists")
		}
		uc.logger.Errorw("failed to save service ticket", "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("service ticket created",
		"service_id", newService.ID(),
		"service_number", newService.ServiceNumber(),
	)
	return toServiceDTO(newService), nil
}

func (uc *CreateServiceUseCase) validateTechnician(ctx context.Context, technicianID uint) error {
	tech, err := uc.userRepo.FindByID(ctx, technicianID)
	if err != nil {
		return err
	}
	if tech == nil {
		return errors.NewReferenceError("technician does not exist")
	}
	if !tech.IsTechnician() {
		return errors.NewValidationError("assigned user is not a technician")
	}
	if !tech.IsActive() {
		return errors.NewValidationError("assigned technician is not active")
	}
	return nil
}
