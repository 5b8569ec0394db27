package usecases

import (
	"context"
	"time"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type mockSaleRepository struct {
	SaveFunc                func(ctx context.Context, s *sale.Sale) error
	UpdateFunc              func(ctx context.Context, s *sale.Sale) error
	DeleteFunc              func(ctx context.Context, id uint) error
	FindByIDFunc            func(ctx context.Context, id uint) (*sale.Sale, error)
	FindByInvoiceNumberFunc func(ctx context.Context, number string) (*sale.Sale, error)
	ListFunc                func(ctx context.Context, filter sale.Filter) ([]*sale.Sale, error)
	CountFunc               func(ctx context.Context, filter sale.Filter) (int64, error)
	NextSequenceFunc        func(ctx context.Context) (uint, error)
	FindItemsBySaleIDFunc   func(ctx context.Context, saleID uint) ([]*sale.Item, error)
	SumPaidBetweenFunc      func(ctx context.Context, from, to time.Time) (float64, error)
	FindRecentFunc          func(ctx context.Context, limit int, salesUserID *uint) ([]*sale.Sale, error)
}

func (m *mockSaleRepository) Save(ctx context.Context, s *sale.Sale) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSaleRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSaleRepository) FindByID(ctx context.Context, id uint) (*sale.Sale, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSaleRepository) FindByInvoiceNumber(ctx context.Context, number string) (*sale.Sale, error) {
	if m.FindByInvoiceNumberFunc != nil {
		return m.FindByInvoiceNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockSaleRepository) List(ctx context.Context, filter sale.Filter) ([]*sale.Sale, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockSaleRepository) Count(ctx context.Context, filter sale.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockSaleRepository) NextSequence(ctx context.Context) (uint, error) {
	if m.NextSequenceFunc != nil {
		return m.NextSequenceFunc(ctx)
	}
	return 1, nil
}

func (m *mockSaleRepository) FindItemsBySaleID(ctx context.Context, saleID uint) ([]*sale.Item, error) {
	if m.FindItemsBySaleIDFunc != nil {
		return m.FindItemsBySaleIDFunc(ctx, saleID)
	}
	return nil, nil
}

func (m *mockSaleRepository) SumPaidBetween(ctx context.Context, from, to time.Time) (float64, error) {
	if m.SumPaidBetweenFunc != nil {
		return m.SumPaidBetweenFunc(ctx, from, to)
	}
	return 0, nil
}

func (m *mockSaleRepository) FindRecent(ctx context.Context, limit int, salesUserID *uint) ([]*sale.Sale, error) {
	if m.FindRecentFunc != nil {
		return m.FindRecentFunc(ctx, limit, salesUserID)
	}
	return nil, nil
}

type mockCustomerRepository struct {
	ExistsFunc func(ctx context.Context, id uint) (bool, error)
}

func (m *mockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error   { return nil }
func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error              { return nil }

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	return nil, nil
}

func (m *mockCustomerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockCustomerRepository) List(ctx context.Context, filter customer.Filter) ([]*customer.Customer, int64, error) {
	return nil, 0, nil
}

func (m *mockCustomerRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
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
