package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type DeleteProductCommand struct {
	ProductID uint
}

// DeleteProductUseCase removes a product. The schema cascades the delete
// to part, sale, and purchase line items that reference it.
type DeleteProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewDeleteProductUseCase(
	productRepo product.Repository,
	logger logger.Interface,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ProductID == 0 {
		return errors.NewValidationError("product ID is required")
	}

	existing, err := uc.productRepo.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.NewNotFoundError("product not found")
	}

	if err := uc.productRepo.Delete(ctx, cmd.ProductID); err != nil {
		uc.logger.Errorw("failed to delete product", "product_id", cmd.ProductID, "error", err)
		return err
	}

	uc.logger.Infow("product deleted", "product_id", cmd.ProductID, "code", existing.Code())
	return nil
}
