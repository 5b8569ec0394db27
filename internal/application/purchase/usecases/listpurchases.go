package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/purchase"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type ListPurchasesQuery struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

type ListPurchasesResult struct {
	Purchases []*PurchaseDTO
	Total     int64
	Page      int
	PageSize  int
}

type ListPurchasesUseCase struct {
	purchaseRepo purchase.Repository
	logger       logger.Interface
}

func NewListPurchasesUseCase(
	purchaseRepo purchase.Repository,
	logger logger.Interface,
) *ListPurchasesUseCase {
	return &ListPurchasesUseCase{
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

func (uc *ListPurchasesUseCase) Execute(ctx context.Context, query ListPurchasesQuery) (*ListPurchasesResult, error) {
	if query.Status != "" && !purchase.Status(query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status: " + query.Status)
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := purchase.Filter{
		Status:   purchase.Status(query.Status),
		Search:   query.Search,
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	total, err := uc.purchaseRepo.Count(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count purchases", "error", err)
		return nil, err
	}

	purchases, err := uc.purchaseRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list purchases", "error", err)
		return nil, err
	}

	return &ListPurchasesResult{
		Purchases: toPurchaseDTOs(purchases),
		Total:     total,
		Page:      p.Page,
		PageSize:  p.PageSize,
	}, nil
}
