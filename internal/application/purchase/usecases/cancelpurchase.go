package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/purchase"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type CancelPurchaseCommand struct {
	PurchaseID uint
}

type CancelPurchaseUseCase struct {
	purchaseRepo purchase.Repository
	logger       logger.Interface
}

func NewCancelPurchaseUseCase(
	purchaseRepo purchase.Repository,
	logger logger.Interface,
) *CancelPurchaseUseCase {
	return &CancelPurchaseUseCase{
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

func (uc *CancelPurchaseUseCase) Execute(ctx context.Context, cmd CancelPurchaseCommand) (*PurchaseDTO, error) {
	if cmd.PurchaseID == 0 {
		return nil, errors.NewValidationError("purchase ID is required")
	}

	existing, err := uc.purchaseRepo.FindByID(ctx, cmd.PurchaseID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("purchase not found")
	}

	if err := existing.MarkCancelled(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.purchaseRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to cancel purchase", "purchase_id", cmd.PurchaseID, "error", err)
		return nil, err
	}

	uc.logger.Infow("purchase cancelled", "purchase_id", cmd.PurchaseID)
	return toPurchaseDTO(existing), nil
}
