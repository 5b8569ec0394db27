package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type CreateProductCommand struct {
	Code          string
	Name          string
	Description   string
	Category      string
	Price         float64
	Cost          float64
	StockQuantity int
	MinStockLevel int
}

type CreateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewCreateProductUseCase(
	productRepo product.Repository,
	logger logger.Interface,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*ProductDTO, error) {
	uc.logger.Infow("creating product", "code", cmd.Code)

	category := product.Category(cmd.Category)
	if !category.IsValid() {
		return nil, errors.NewValidationError("invalid category: " + cmd.Category)
	}

	existing, err := uc.productRepo.FindByCode(ctx, cmd.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("product code already exists", cmd.Code)
	}

	newProduct, err := product.NewProduct(
		cmd.Code,
		cmd.Name,
		cmd.Description,
		category,
		cmd.Price,
		cmd.Cost,
		cmd.StockQuantity,
		cmd.MinStockLevel,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Save(ctx, newProduct); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("product code already exists", cmd.Code)
		}
		uc.logger.Errorw("failed to save product", "code", cmd.Code, "error", err)
		return nil, err
	}

	uc.logger.Infow("product created", "product_id", newProduct.ID(), "code", newProduct.Code())
	return toProductDTO(newProduct), nil
}
