package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type UpdateCustomerCommand struct {
	CustomerID uint
	Name       string
	Email      string
	Phone      string
	Address    string
}

type UpdateCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(
	customerRepo customer.Repository,
	logger logger.Interface,
) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*CustomerDTO, error) {
	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	existing, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	if err := existing.UpdateContact(cmd.Name, cmd.Email, cmd.Phone, cmd.Address); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customerRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, err
	}

	return toCustomerDTO(existing), nil
}
