package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type UpdateProductCommand struct {
	ProductID     uint
	Code          string
	Name          string
	Description   string
	Category      string
	Price         float64
	Cost          float64
	StockQuantity int
	MinStockLevel int
	Status        string
}

type UpdateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewUpdateProductUseCase(
	productRepo product.Repository,
	logger logger.Interface,
) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*ProductDTO, error) {
	if cmd.ProductID == 0 {
		return nil, errors.NewValidationError("product ID is required")
	}

	category := product.Category(cmd.Category)
	if !category.IsValid() {
		return nil, errors.NewValidationError("invalid category: " + cmd.Category)
	}
	status := product.Status(cmd.Status)
	if !status.IsValid() {
		return nil, errors.NewValidationError("invalid status: " + cmd.Status)
	}

	existing, err := uc.productRepo.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("product not found")
	}

	if cmd.Code != existing.Code() {
		byCode, err := uc.productRepo.FindByCode(ctx, cmd.Code)
		if err != nil {
			return nil, err
		}
		if byCode != nil && byCode.ID() != existing.ID() {
			return nil, errors.NewConflictError("product code already exists", cmd.Code)
		}
	}

	if err := existing.UpdateDetails(cmd.Code, cmd.Name, cmd.Description, category); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.UpdatePricing(cmd.Price, cmd.Cost); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := existing.UpdateStockLevels(cmd.StockQuantity, cmd.MinStockLevel); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if status.IsActive() {
		existing.Activate()
	} else {
		existing.Deactivate()
	}

	if err := uc.productRepo.Update(ctx, existing); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("product code already exists", cmd.Code)
		}
		uc.logger.Errorw("failed to update product", "product_id", cmd.ProductID, "error", err)
		return nil, err
	}

	return toProductDTO(existing), nil
}
