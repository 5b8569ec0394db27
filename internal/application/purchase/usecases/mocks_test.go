package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/purchase"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type mockPurchaseRepository struct {
	SaveFunc                  func(ctx context.Context, p *purchase.Purchase) error
	UpdateFunc                func(ctx context.Context, p *purchase.Purchase) error
	DeleteFunc                func(ctx context.Context, id uint) error
	FindByIDFunc              func(ctx context.Context, id uint) (*purchase.Purchase, error)
	FindByPurchaseNumberFunc  func(ctx context.Context, number string) (*purchase.Purchase, error)
	ListFunc                  func(ctx context.Context, filter purchase.Filter) ([]*purchase.Purchase, error)
	CountFunc                 func(ctx context.Context, filter purchase.Filter) (int64, error)
	NextSequenceFunc          func(ctx context.Context) (uint, error)
	FindItemsByPurchaseIDFunc func(ctx context.Context, purchaseID uint) ([]*purchase.Item, error)
}

func (m *mockPurchaseRepository) Save(ctx context.Context, p *purchase.Purchase) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPurchaseRepository) Update(ctx context.Context, p *purchase.Purchase) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockPurchaseRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockPurchaseRepository) FindByID(ctx context.Context, id uint) (*purchase.Purchase, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockPurchaseRepository) FindByPurchaseNumber(ctx context.Context, number string) (*purchase.Purchase, error) {
	if m.FindByPurchaseNumberFunc != nil {
		return m.FindByPurchaseNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockPurchaseRepository) List(ctx context.Context, filter purchase.Filter) ([]*purchase.Purchase, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockPurchaseRepository) Count(ctx context.Context, filter purchase.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockPurchaseRepository) NextSequence(ctx context.Context) (uint, error) {
	if m.NextSequenceFunc != nil {
		return m.NextSequenceFunc(ctx)
	}
	return 1, nil
}

func (m *mockPurchaseRepository) FindItemsByPurchaseID(ctx context.Context, purchaseID uint) ([]*purchase.Item, error) {
	if m.FindItemsByPurchaseIDFunc != nil {
		return m.FindItemsByPurchaseIDFunc(ctx, purchaseID)
	}
	return nil, nil
}

type mockProductRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*product.Product, error)
	UpdateFunc   func(ctx context.Context, p *product.Product) error
}

func (m *mockProductRepository) Save(ctx context.Context, p *product.Product) error { return nil }

func (m *mockProductRepository) Update(ctx context.Context, p *product.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockProductRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	return nil, nil
}

func (m *mockProductRepository) List(ctx context.Context, filter product.Filter) ([]*product.Product, int64, error) {
	return nil, 0, nil
}

func (m *mockProductRepository) FindActiveLowStock(ctx context.Context, limit int) ([]*product.Product, error) {
	return nil, nil
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

func (m *mockProductRepository) CountLowStock(ctx context.Context) (int64, error) {
	return 0, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
