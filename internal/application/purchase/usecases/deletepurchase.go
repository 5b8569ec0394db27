package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/purchase"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type DeletePurchaseCommand struct {
	PurchaseID uint
}

// DeletePurchaseUseCase removes a purchase order and, via the schema, its
// line items. Stock credited by a prior receipt is not reversed.
type DeletePurchaseUseCase struct {
	purchaseRepo purchase.Repository
	logger       logger.Interface
}

func NewDeletePurchaseUseCase(
	purchaseRepo purchase.Repository,
	logger logger.Interface,
) *DeletePurchaseUseCase {
	return &DeletePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		logger:       logger,
	}
}

func (uc *DeletePurchaseUseCase) Execute(ctx context.Context, cmd DeletePurchaseCommand) error {
	if cmd.PurchaseID == 0 {
		return errors.NewValidationError("purchase ID is required")
	}

	existing, err := uc.purchaseRepo.FindByID(ctx, cmd.PurchaseID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("purchase not found")
	}

	if err := uc.purchaseRepo.Delete(ctx, cmd.PurchaseID); err != nil {
		uc.logger.Errorw("failed to delete purchase", "purchase_id", cmd.PurchaseID, "error", err)
		return err
	}

	uc.logger.Infow("purchase deleted", "purchase_id", cmd.PurchaseID)
	return nil
}
