package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type GetSaleQuery struct {
	SaleID uint
}

type GetSaleUseCase struct {
	saleRepo sale.Repository
	logger   logger.Interface
}

func NewGetSaleUseCase(
	saleRepo sale.Repository,
	logger logger.Interface,
) *GetSaleUseCase {
	return &GetSaleUseCase{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

func (uc *GetSaleUseCase) Execute(ctx context.Context, query GetSaleQuery) (*SaleDTO, error) {
	if query.SaleID == 0 {
		return nil, errors.NewValidationError("sale ID is required")
	}

	found, err := uc.saleRepo.FindByID(ctx, query.SaleID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("sale not found")
	}

	items, err := uc.saleRepo.FindItemsBySaleID(ctx, found.ID())
	if err != nil {
		return nil, err
	}
	found.SetItems(items)

	return toSaleDTO(found), nil
}
