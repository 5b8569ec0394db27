package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

const defaultLowStockLimit = 10

type ListLowStockQuery struct {
	Limit int
}

// ListLowStockUseCase returns active products whose stock is at or below
// the minimum, lowest stock first, for the dashboard restock panel.
type ListLowStockUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewListLowStockUseCase(
	productRepo product.Repository,
	logger logger.Interface,
) *ListLowStockUseCase {
	return &ListLowStockUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListLowStockUseCase) Execute(ctx context.Context, query ListLowStockQuery) ([]*ProductDTO, error) {
	limit := query.Limit
	if limit < 1 {
		limit = defaultLowStockLimit
	}

	products, err := uc.productRepo.FindActiveLowStock(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list low stock products", "error", err)
		return nil, err
	}

	return toProductDTOs(products), nil
}
