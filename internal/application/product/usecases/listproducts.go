package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type ListProductsQuery struct {
	Search   string
	Category string
	Status   string
	LowStock bool
	Page     int
	PageSize int
}

type ListProductsResult struct {
	Products []*ProductDTO
	Total    int64
	Page     int
	PageSize int
}

type ListProductsUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewListProductsUseCase(
	productRepo product.Repository,
	logger logger.Interface,
) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	if query.Category != "" && !product.Category(query.Category).IsValid() {
		return nil, errors.NewValidationError("invalid category: " + query.Category)
	}
	if query.Status != "" && !product.Status(query.Status).IsValid() {
		return nil, errors.NewValidationError("invalid status: " + query.Status)
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := product.Filter{
		Search:   query.Search,
		LowStock: query.LowStock,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
	if query.Category != "" {
		category := product.Category(query.Category)
		filter.Category = &category
	}
	if query.Status != "" {
		status := product.Status(query.Status)
		filter.Status = &status
	}

	products, total, err := uc.productRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list products", "error", err)
		return nil, err
	}

	return &ListProductsResult{
		Products: toProductDTOs(products),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
