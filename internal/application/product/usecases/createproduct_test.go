package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/shared/errors"
)

func existingProduct(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.ReconstructProduct(
		1, "RM01", "RAM DDR4 8GB", "", product.CategoryLaptopPart,
		450000, 380000, 2, 10, product.StatusActive,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return p
}

func TestCreateProductUseCase_Execute(t *testing.T) {
	t.Run("creates product", func(t *testing.T) {
		repo := &mockProductRepository{
			SaveFunc: func(ctx context.Context, p *product.Product) error {
				return p.SetID(1)
			},
		}
		uc := NewCreateProductUseCase(repo, newTestLogger())

		result, err := uc.Execute(context.Background(), CreateProductCommand{
			Code:          "RM01",
			Name:          "RAM DDR4 8GB",
			Category:      "laptop_part",
			Price:         450000,
			Cost:          380000,
			StockQuantity: 2,
			MinStockLevel: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, "RM01", result.Code)
		assert.Equal(t, "active", result.Status)
		assert.True(t, result.LowStock)
	})

	t.Run("rejects invalid category", func(t *testing.T) {
		uc := NewCreateProductUseCase(&mockProductRepository{}, newTestLogger())

		_, err := uc.Execute(context.Background(), CreateProductCommand{
			Code: "RM01", Name: "RAM", Category: "cpu",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		repo := &mockProductRepository{
			FindByCodeFunc: func(ctx context.Context, code string) (*product.Product, error) {
				return existingProduct(t), nil
			},
		}
		uc := NewCreateProductUseCase(repo, newTestLogger())

		_, err := uc.Execute(context.Background(), CreateProductCommand{
			Code: "RM01", Name: "RAM", Category: "laptop_part",
		})

		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestUpdateProductUseCase_Execute(t *testing.T) {
	t.Run("updates fields and status", func(t *testing.T) {
		repo := &mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*product.Product, error) {
				return existingProduct(t), nil
			},
		}
		uc := NewUpdateProductUseCase(repo, newTestLogger())

		result, err := uc.Execute(context.Background(), UpdateProductCommand{
			ProductID:     1,
			Code:          "RM01",
			Name:          "RAM DDR4 16GB",
			Category:      "laptop_part",
			Price:         800000,
			Cost:          650000,
			StockQuantity: 12,
			MinStockLevel: 10,
			Status:        "inactive",
		})

		require.NoError(t, err)
		assert.Equal(t, "RAM DDR4 16GB", result.Name)
		assert.Equal(t, "inactive", result.Status)
		assert.False(t, result.LowStock)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*product.Product, error) {
				return nil, nil
			},
		}
		uc := NewUpdateProductUseCase(repo, newTestLogger())

		_, err := uc.Execute(context.Background(), UpdateProductCommand{
			ProductID: 99, Code: "X", Name: "X", Category: "other", Status: "active",
		})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestListLowStockUseCase_Execute(t *testing.T) {
	repo := &mockProductRepository{
		FindActiveLowStockFunc: func(ctx context.Context, limit int) ([]*product.Product, error) {
			assert.Equal(t, defaultLowStockLimit, limit)
			return []*product.Product{existingProduct(t)}, nil
		},
	}
	uc := NewListLowStockUseCase(repo, newTestLogger())

	result, err := uc.Execute(context.Background(), ListLowStockQuery{})

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].LowStock)
}
