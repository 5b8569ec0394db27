package usecases

import (
	"context"
	"time"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/purchase"
	"github.com/bengkellab/bengkel/internal/shared/constants"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/identifier"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type PurchaseItemInput struct {
	ProductID uint
	Quantity  int
	UnitPrice float64
}

type CreatePurchaseCommand struct {
	SupplierName string
	UserID       uint
	Items        []PurchaseItemInput
	Notes        string
}

// CreatePurchaseUseCase places a supplier order. Stock is not credited
// until the order is received.
type CreatePurchaseUseCase struct {
	purchaseRepo purchase.Repository
	productRepo  product.Repository
	txMgr        transactionManager
	logger       logger.Interface
}

func NewCreatePurchaseUseCase(
	purchaseRepo purchase.Repository,
	productRepo product.Repository,
	txMgr transactionManager,
	logger logger.Interface,
) *CreatePurchaseUseCase {
	return &CreatePurchaseUseCase{
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		txMgr:        txMgr,
		logger:       logger,
	}
}

func (uc *CreatePurchaseUseCase) Execute(ctx context.Context, cmd CreatePurchaseCommand) (*PurchaseDTO, error) {
	uc.logger.Infow("creating purchase", "supplier", cmd.SupplierName, "items", len(cmd.Items))

	if len(cmd.Items) == 0 {
		return nil, errors.NewValidationError("at least one item is required")
	}

	items := make([]*purchase.Item, 0, len(cmd.Items))
	for _, input := range cmd.Items {
		prod, err := uc.productRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
		if prod == nil {
			return nil, errors.NewReferenceError("product does not exist")
		}

		item, err := purchase.NewItem(input.ProductID, input.Quantity, input.UnitPrice)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		items = append(items, item)
	}

	newPurchase, err := purchase.NewPurchase(cmd.SupplierName, cmd.UserID, items, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		seq, err := uc.purchaseRepo.NextSequence(txCtx)
		if err != nil {
			return err
		}
		number := identifier.Format(constants.PurchaseNumberPrefix, time.Now(), seq)
		if err := newPurchase.SetPurchaseNumber(number); err != nil {
			return errors.NewInternalError(err.Error())
		}
		return uc.purchaseRepo.Save(txCtx, newPurchase)
	})
	if txErr != nil {
		if errors.IsDuplicateError(txErr) {
			return nil, errors.NewConflictError("purchase number already exists")
		}
		uc.logger.Errorw("failed to create purchase", "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("purchase created",
		"purchase_id", newPurchase.ID(),
		"purchase_number", newPurchase.PurchaseNumber(),
	)
	return toPurchaseDTO(newPurchase), nil
}
