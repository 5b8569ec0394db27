package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type DeleteCustomerCommand struct {
	CustomerID uint
}

// DeleteCustomerUseCase removes a customer. The schema cascades the delete
// to the customer's service tickets and sales, including their line items.
type DeleteCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewDeleteCustomerUseCase(
	customerRepo customer.Repository,
	logger logger.Interface,
) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, cmd DeleteCustomerCommand) error {
	if cmd.CustomerID == 0 {
		return errors.NewValidationError("customer ID is required")
	}

	existing, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("customer not found")
	}

	if err := uc.customerRepo.Delete(ctx, cmd.CustomerID); err != nil {
		uc.logger.Errorw("failed to delete customer", "customer_id", cmd.CustomerID, "error", err)
		return err
	}

	uc.logger.Infow("customer deleted", "customer_id", cmd.CustomerID)
	return nil
}
