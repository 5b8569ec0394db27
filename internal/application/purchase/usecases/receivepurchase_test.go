package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/purchase"
	"github.com/bengkellab/bengkel/internal/shared/errors"
)

func orderedPurchase(t *testing.T) *purchase.Purchase {
	t.Helper()
	p, err := purchase.ReconstructPurchase(
		1, "PO202501150001", "PT Sumber Part", 1,
		140000, purchase.StatusOrdered,
		time.Now(), nil, "",
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return p
}

func orderedItem(t *testing.T, id, productID uint, qty int) *purchase.Item {
	t.Helper()
	item, err := purchase.ReconstructItem(id, 1, productID, qty, 8000, float64(qty)*8000, time.Now(), time.Now())
	require.NoError(t, err)
	return item
}

func stockedProduct(t *testing.T, id uint, stock int) *product.Product {
	t.Helper()
	p, err := product.ReconstructProduct(
		id, "RM01", "RAM DDR4 8GB", "", product.CategoryLaptopPart,
		10000, 8000, stock, 2, product.StatusActive,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return p
}

func TestReceivePurchaseUseCase_Execute(t *testing.T) {
	t.Run("credits stock per line item", func(t *testing.T) {
		prod := stockedProduct(t, 10, 2)
		var savedStock int

		purchaseRepo := &mockPurchaseRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*purchase.Purchase, error) {
				return orderedPurchase(t), nil
			},
			FindItemsByPurchaseIDFunc: func(ctx context.Context, purchaseID uint) ([]*purchase.Item, error) {
				return []*purchase.Item{orderedItem(t, 1, 10, 10)}, nil
			},
		}
		productRepo := &mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*product.Product, error) {
				return prod, nil
			},
			UpdateFunc: func(ctx context.Context, p *product.Product) error {
				savedStock = p.StockQuantity()
				return nil
			},
		}
		uc := NewReceivePurchaseUseCase(purchaseRepo, productRepo, passthroughTxManager{}, newTestLogger())

		result, err := uc.Execute(context.Background(), ReceivePurchaseCommand{PurchaseID: 1})

		require.NoError(t, err)
		assert.Equal(t, "received", result.Status)
		assert.NotNil(t, result.ReceivedAt)
		assert.Equal(t, 12, savedStock)
	})

	t.Run("cannot receive twice", func(t *testing.T) {
		received := orderedPurchase(t)
		require.NoError(t, received.MarkReceived())

		purchaseRepo := &mockPurchaseRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*purchase.Purchase, error) {
				return received, nil
			},
		}
		uc := NewReceivePurchaseUseCase(purchaseRepo, &mockProductRepository{}, passthroughTxManager{}, newTestLogger())

		_, err := uc.Execute(context.Background(), ReceivePurchaseCommand{PurchaseID: 1})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("not found", func(t *testing.T) {
		uc := NewReceivePurchaseUseCase(&mockPurchaseRepository{}, &mockProductRepository{}, passthroughTxManager{}, newTestLogger())

		_, err := uc.Execute(context.Background(), ReceivePurchaseCommand{PurchaseID: 9})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestCreatePurchaseUseCase_Execute(t *testing.T) {
	t.Run("sums line totals", func(t *testing.T) {
		productRepo := &mockProductRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*product.Product, error) {
				return stockedProduct(t, id, 5), nil
			},
		}
		purchaseRepo := &mockPurchaseRepository{
			SaveFunc: func(ctx context.Context, p *purchase.Purchase) error {
				return p.SetID(1)
			},
		}
		uc := NewCreatePurchaseUseCase(purchaseRepo, productRepo, passthroughTxManager{}, newTestLogger())

		result, err := uc.Execute(context.Background(), CreatePurchaseCommand{
			SupplierName: "PT Sumber Part",
			UserID:       1,
			Items: []PurchaseItemInput{
				{ProductID: 10, Quantity: 10, UnitPrice: 8000},
				{ProductID: 11, Quantity: 5, UnitPrice: 12000},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, float64(140000), result.TotalAmount)
		assert.Equal(t, "ordered", result.Status)
		assert.Equal(t, "PO", result.PurchaseNumber[:2])
	})

	t.Run("unknown product", func(t *testing.T) {
		uc := NewCreatePurchaseUseCase(&mockPurchaseRepository{}, &mockProductRepository{}, passthroughTxManager{}, newTestLogger())

		_, err := uc.Execute(context.Background(), CreatePurchaseCommand{
			SupplierName: "PT Sumber Part",
			UserID:       1,
			Items:        []PurchaseItemInput{{ProductID: 99, Quantity: 1, UnitPrice: 100}},
		})

		require.Error(t, err)
		assert.True(t, errors.IsReferenceError(err))
	})
}
