package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type GetProductQuery struct {
	ProductID uint
}

type GetProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewGetProductUseCase(
	productRepo product.Repository,
	logger logger.Interface,
) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *GetProductUseCase) Execute(ctx context.Context, query GetProductQuery) (*ProductDTO, error) {
	if query.ProductID == 0 {
		return nil, errors.NewValidationError("product ID is required")
	}

	found, err := uc.productRepo.FindByID(ctx, query.ProductID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errors.NewNotFoundError("product not found")
	}

	return toProductDTO(found), nil
}
