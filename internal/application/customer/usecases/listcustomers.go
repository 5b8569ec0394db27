package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type ListCustomersQuery struct {
	Search   string
	Page     int
	PageSize int
}

type ListCustomersResult struct {
	Customers []*CustomerDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomersUseCase(
	customerRepo customer.Repository,
	logger logger.Interface,
) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error) {
	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := customer.Filter{
		Search:   query.Search,
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	customers, total, err := uc.customerRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list customers", "error", err)
		return nil, err
	}

	return &ListCustomersResult{
		Customers: toCustomerDTOs(customers),
		Total:     total,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}, nil
}
