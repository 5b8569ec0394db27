package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/purchase"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type GetPurchaseQuery struct {
	PurchaseID uint
}

type GetPurchaseUseCase struct {
	purchaseRepo purchase.Repository
	logger       logger.Interface
}

func NewGetPurchaseUseCase(
	purchaseRepo purchase.Repository,
	logger logger.Interface,
) *GetPurchaseUseCase {
	return &GetPurchaseUseCase{
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

func (uc *GetPurchaseUseCase) Execute(ctx context.Context, query GetPurchaseQuery) (*PurchaseDTO, error) {
	if query.PurchaseID == 0 {
		return nil, errors.NewValidationError("purchase ID is required")
	}

	found, err := uc.purchaseRepo.FindByID(ctx, query.PurchaseID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("purchase not found")
	}

	items, err := uc.purchaseRepo.FindItemsByPurchaseID(ctx, found.ID())
	if err != nil {
		return nil, err
	}
	found.SetItems(items)

	return toPurchaseDTO(found), nil
}
