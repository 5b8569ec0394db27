package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type CreateCustomerCommand struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type CreateCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewCreateCustomerUseCase(
	customerRepo customer.Repository,
	logger logger.Interface,
) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*CustomerDTO, error) {
	uc.logger.Infow("creating customer", "name", cmd.Name)

	newCustomer, err := customer.NewCustomer(cmd.Name, cmd.Email, cmd.Phone, cmd.Address)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customerRepo.Save(ctx, newCustomer); err != nil {
		uc.logger.Errorw("failed to save customer", "error", err)
		return nil, err
	}

	uc.logger.Infow("customer created", "customer_id", newCustomer.ID())
	return toCustomerDTO(newCustomer), nil
}
