package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type DeleteSaleCommand struct {
	SaleID uint
}

// DeleteSaleUseCase removes an invoice. The schema cascades the delete to
// its line items. Stock is not credited back.
type DeleteSaleUseCase struct {
	saleRepo sale.Repository
	logger   logger.Interface
}

func NewDeleteSaleUseCase(
	saleRepo sale.Repository,
	logger logger.Interface,
) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

func (uc *DeleteSaleUseCase) Execute(ctx context.Context, cmd DeleteSaleCommand) error {
	if cmd.SaleID == 0 {
		return errors.NewValidationError("sale ID is required")
	}

	existing, err := uc.saleRepo.FindByID(ctx, cmd.SaleID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("sale not found")
	}

	if err := uc.saleRepo.Delete(ctx, cmd.SaleID); err != nil {
		uc.logger.Errorw("failed to delete sale", "sale_id", cmd.SaleID, "error", err)
		return err
	}

	uc.logger.Infow("sale deleted", "sale_id", cmd.SaleID, "invoice_number", existing.InvoiceNumber())
	return nil
}
