package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/domain/user"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type UpdateServiceCommand struct {
	ServiceID        uint
	TechnicianID     *uint
	LaptopBrand      string
	LaptopModel      string
	LaptopSerial     string
	Diagnosis        string
	RepairNotes      string
	Status           string
	ServiceCost      *float64
	PartsCost        *float64
	CustomerApproved *bool
}

// UpdateServiceUseCase edits a ticket. The total cost is re-derived from
// service cost plus parts cost whenever either is supplied; a
// caller-supplied total is never accepted. Moving into completed stamps
// the completion time exactly once.
type UpdateServiceUseCase struct {
	serviceRepo  service.Repository
	customerRepo customer.Repository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewUpdateServiceUseCase(
	serviceRepo service.Repository,
	customerRepo customer.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{
		serviceRepo:  serviceRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *UpdateServiceUseCase) Execute(ctx context.Context, cmd UpdateServiceCommand) (*ServiceDTO, error) {
	if cmd.ServiceID == 0 {
		return nil, errors.NewValidationError("service ID is required")
	}
	if cmd.Status != "" && !service.Status(cmd.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status: " + cmd.Status)
	}

	existing, err := uc.serviceRepo.FindByID(ctx, cmd.ServiceID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("service ticket not found")
	}

	if cmd.TechnicianID != nil {
		tech, err := uc.userRepo.FindByID(ctx, *cmd.TechnicianID)
		if err != nil {
			return nil, err
		}
		if tech == nil {
			return nil, errors.NewReferenceError("technician does not exist")
		}
		if !tech.IsTechnician() {
			return nil, errors.NewValidationError("assigned user is not a technician")
		}
		if err := existing.AssignTechnician(cmd.TechnicianID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.LaptopBrand != "" || cmd.LaptopModel != "" {
		brand := cmd.LaptopBrand
		if brand == "" {
			brand = existing.LaptopBrand()
		}
		model := cmd.LaptopModel
		if model == "" {
			model = existing.LaptopModel()
		}
		serial := cmd.LaptopSerial
		if serial == "" {
			serial = existing.LaptopSerial()
		}
		if err := existing.UpdateDevice(brand, model, serial); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Diagnosis != "" || cmd.RepairNotes != "" {
		diagnosis := cmd.Diagnosis
		if diagnosis == "" {
			diagnosis = existing.Diagnosis()
		}
		notes := cmd.RepairNotes
		if notes == "" {
			notes = existing.RepairNotes()
		}
		existing.UpdateNotes(diagnosis, notes)
	}

	if cmd.ServiceCost != nil || cmd.PartsCost != nil {
		serviceCost := existing.ServiceCost()
		if cmd.ServiceCost != nil {
			serviceCost = *cmd.ServiceCost
		}
		partsCost := existing.PartsCost()
		if cmd.PartsCost != nil {
			partsCost = *cmd.PartsCost
		}
		if err := existing.UpdateCosts(serviceCost, partsCost); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.CustomerApproved != nil && *cmd.CustomerApproved {
		existing.Approve()
	}

	if cmd.Status != "" {
		if err := existing.ChangeStatus(service.Status(cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.serviceRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update service ticket", "service_id", cmd.ServiceID, "error", err)
		return nil, err
	}

	return toServiceDTO(existing), nil
}
