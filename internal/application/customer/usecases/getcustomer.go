package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type GetCustomerQuery struct {
	CustomerID uint
}

type GetCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewGetCustomerUseCase(
	customerRepo customer.Repository,
	logger logger.Interface,
) *GetCustomerUseCase {
	return &GetCustomerUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *GetCustomerUseCase) Execute(ctx context.Context, query GetCustomerQuery) (*CustomerDTO, error) {
	if query.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	found, err := uc.customerRepo.FindByID(ctx, query.CustomerID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("customer not found")
	}

	return toCustomerDTO(found), nil
}
