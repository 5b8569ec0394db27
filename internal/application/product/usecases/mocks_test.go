package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type mockProductRepository struct {
	SaveFunc               func(ctx context.Context, p *product.Product) error
	UpdateFunc             func(ctx context.Context, p *product.Product) error
	DeleteFunc             func(ctx context.Context, id uint) error
	FindByIDFunc           func(ctx context.Context, id uint) (*product.Product, error)
	FindByCodeFunc         func(ctx context.Context, code string) (*product.Product, error)
	ListFunc               func(ctx context.Context, filter product.Filter) ([]*product.Product, int64, error)
	FindActiveLowStockFunc func(ctx context.Context, limit int) ([]*product.Product, error)
	CountFunc              func(ctx context.Context) (int64, error)
	CountLowStockFunc      func(ctx context.Context) (int64, error)
}

func (m *mockProductRepository) Save(ctx context.Context, p *product.Product) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *product.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	if m.FindByCodeFunc != nil {
		return m.FindByCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockProductRepository) List(ctx context.Context, filter product.Filter) ([]*product.Product, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockProductRepository) FindActiveLowStock(ctx context.Context, limit int) ([]*product.Product, error) {
	if m.FindActiveLowStockFunc != nil {
		return m.FindActiveLowStockFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockProductRepository) CountLowStock(ctx context.Context) (int64, error) {
	if m.CountLowStockFunc != nil {
		return m.CountLowStockFunc(ctx)
	}
	return 0, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
