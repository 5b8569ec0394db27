package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/purchase"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type ReceivePurchaseCommand struct {
	PurchaseID uint
}

// ReceivePurchaseUseCase records goods arrival and credits stock for every
// line item in one transaction. Receiving is one-way.
type ReceivePurchaseUseCase struct {
	purchaseRepo purchase.Repository
	productRepo  product.Repository
	txMgr        transactionManager
	logger       logger.Interface
}

func NewReceivePurchaseUseCase(
	purchaseRepo purchase.Repository,
	productRepo product.Repository,
	txMgr transactionManager,
	logger logger.Interface,
) *ReceivePurchaseUseCase {
	return &ReceivePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *ReceivePurchaseUseCase) Execute(ctx context.Context, cmd ReceivePurchaseCommand) (*PurchaseDTO, error) {
	if cmd.PurchaseID == 0 {
		return nil, errors.NewValidationError("purchase ID is required")
	}

	var received *purchase.Purchase
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.purchaseRepo.FindByID(txCtx, cmd.PurchaseID)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.NewNotFoundError("purchase not found")
		}

		items, err := uc.purchaseRepo.FindItemsByPurchaseID(txCtx, existing.ID())
		if err != nil {
			return err
		}
		existing.SetItems(items)

		if err := existing.MarkReceived(); err != nil {
			return errors.NewValidationError(err.Error())
		}

		for _, item := range items {
			prod, err := uc.productRepo.FindByID(txCtx, item.ProductID())
			if err != nil {
				return err
			}
			if prod == nil {
				return errors.NewReferenceError("product does not exist")
			}
			if err := prod.IncreaseStock(item.Quantity()); err != nil {
				return errors.NewValidationError(err.Error())
			}
			if err := uc.productRepo.Update(txCtx, prod); err != nil {
				return err
			}
		}

		if err := uc.purchaseRepo.Update(txCtx, existing); err != nil {
			return err
		}

		received = existing
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to receive purchase", "purchase_id", cmd.PurchaseID, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("purchase received",
		"purchase_id", cmd.PurchaseID,
		"purchase_number", received.PurchaseNumber(),
	)
	return toPurchaseDTO(received), nil
}
