package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type MarkSaleCancelledCommand struct {
	SaleID uint
}

// MarkSaleCancelledUseCase voids an invoice. Stock already debited by the
// sale stays debited; any restock is a manual catalog adjustment.
type MarkSaleCancelledUseCase struct {
	saleRepo sale.Repository
	logger   logger.Interface
}

func NewMarkSaleCancelledUseCase(
	saleRepo sale.Repository,
	logger logger.Interface,
) *MarkSaleCancelledUseCase {
	return &MarkSaleCancelledUseCase{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

func (uc *MarkSaleCancelledUseCase) Execute(ctx context.Context, cmd MarkSaleCancelledCommand) (*SaleDTO, error) {
	if cmd.SaleID == 0 {
		return nil, errors.NewValidationError("sale ID is required")
	}

	existing, err := uc.saleRepo.FindByID(ctx, cmd.SaleID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("sale not found")
	}

	if err := existing.MarkCancelled(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.saleRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to cancel sale", "sale_id", cmd.SaleID, "error", err)
		return nil, err
	}

	uc.logger.Infow("sale cancelled", "sale_id", cmd.SaleID, "invoice_number", existing.InvoiceNumber())
	return toSaleDTO(existing), nil
}
