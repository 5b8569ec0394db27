package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type MarkSalePaidCommand struct {
	SaleID uint
}

type MarkSalePaidUseCase struct {
	saleRepo sale.Repository
	logger   logger.Interface
}

func NewMarkSalePaidUseCase(
	saleRepo sale.Repository,
	logger logger.Interface,
) *MarkSalePaidUseCase {
	return &MarkSalePaidUseCase{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

func (uc *MarkSalePaidUseCase) Execute(ctx context.Context, cmd MarkSalePaidCommand) (*SaleDTO, error) {
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

	if err := existing.MarkPaid(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.saleRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to mark sale paid", "sale_id", cmd.SaleID, "error", err)
		return nil, err
	}

	uc.logger.Infow("sale marked paid", "sale_id", cmd.SaleID, "invoice_number", existing.InvoiceNumber())
	return toSaleDTO(existing), nil
}
