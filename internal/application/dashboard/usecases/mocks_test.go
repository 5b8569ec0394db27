package usecases

import (
	"context"
	"time"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}

type mockCustomerRepository struct {
	CountFunc func(ctx context.Context) (int64, error)
}

func (m *mockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error   { return nil }
func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (m *mockCustomerRepository) Delete(ctx context.Context, customerID uint) error      { return nil }
func (m *mockCustomerRepository) FindByID(ctx context.Context, customerID uint) (*customer.Customer, error) {
	return nil, nil
}
func (m *mockCustomerRepository) Exists(ctx context.Context, customerID uint) (bool, error) {
	return false, nil
}
func (m *mockCustomerRepository) List(ctx context.Context, filter customer.Filter) ([]*customer.Customer, int64, error) {
	return nil, 0, nil
}
func (m *mockCustomerRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockProductRepository struct {
	CountFunc              func(ctx context.Context) (int64, error)
	CountLowStockFunc      func(ctx context.Context) (int64, error)
	FindActiveLowStockFunc func(ctx context.Context, limit int) ([]*product.Product, error)
}

func (m *mockProductRepository) Save(ctx context.Context, p *product.Product) error   { return nil }
func (m *mockProductRepository) Update(ctx context.Context, p *product.Product) error { return nil }
func (m *mockProductRepository) Delete(ctx context.Context, productID uint) error     { return nil }
func (m *mockProductRepository) FindByID(ctx context.Context, productID uint) (*product.Product, error) {
	return nil, nil
}
func (m *mockProductRepository) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	return nil, nil
}
func (m *mockProductRepository) List(ctx context.Context, filter product.Filter) ([]*product.Product, int64, error) {
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

type mockServiceRepository struct {
	CountByStatusFunc func(ctx context.Context, status service.Status) (int64, error)
	FindRecentFunc    func(ctx context.Context, limit int, technicianID *uint) ([]*service.Service, error)
}

func (m *mockServiceRepository) Save(ctx context.Context, svc *service.Service) error   { return nil }
func (m *mockServiceRepository) Update(ctx context.Context, svc *service.Service) error { return nil }
func (m *mockServiceRepository) Delete(ctx context.Context, id uint) error              { return nil }
func (m *mockServiceRepository) FindByID(ctx context.Context, id uint) (*service.Service, error) {
	return nil, nil
}
func (m *mockServiceRepository) FindByServiceNumber(ctx context.Context, number string) (*service.Service, error) {
	return nil, nil
}
func (m *mockServiceRepository) List(ctx context.Context, filter service.Filter) ([]*service.Service, error) {
	return nil, nil
}
func (m *mockServiceRepository) Count(ctx context.Context, filter service.Filter) (int64, error) {
	return 0, nil
}
func (m *mockServiceRepository) NextSequence(ctx context.Context) (uint, error) { return 1, nil }
func (m *mockServiceRepository) SavePart(ctx context.Context, part *service.Part) error {
	return nil
}
func (m *mockServiceRepository) DeletePart(ctx context.Context, partID uint) error { return nil }
func (m *mockServiceRepository) FindPartsByServiceID(ctx context.Context, serviceID uint) ([]*service.Part, error) {
	return nil, nil
}
func (m *mockServiceRepository) CountByStatus(ctx context.Context, status service.Status) (int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx, status)
	}
	return 0, nil
}
func (m *mockServiceRepository) FindRecent(ctx context.Context, limit int, technicianID *uint) ([]*service.Service, error) {
	if m.FindRecentFunc != nil {
		return m.FindRecentFunc(ctx, limit, technicianID)
	}
	return nil, nil
}

type mockSaleRepository struct {
	SumPaidBetweenFunc func(ctx context.Context, from, to time.Time) (float64, error)
	FindRecentFunc     func(ctx context.Context, limit int, salesUserID *uint) ([]*sale.Sale, error)
}

func (m *mockSaleRepository) Save(ctx context.Context, s *sale.Sale) error   { return nil }
func (m *mockSaleRepository) Update(ctx context.Context, s *sale.Sale) error { return nil }
func (m *mockSaleRepository) Delete(ctx context.Context, id uint) error      { return nil }
func (m *mockSaleRepository) FindByID(ctx context.Context, id uint) (*sale.Sale, error) {
	return nil, nil
}
func (m *mockSaleRepository) FindByInvoiceNumber(ctx context.Context, number string) (*sale.Sale, error) {
	return nil, nil
}
func (m *mockSaleRepository) List(ctx context.Context, filter sale.Filter) ([]*sale.Sale, error) {
	return nil, nil
}
func (m *mockSaleRepository) Count(ctx context.Context, filter sale.Filter) (int64, error) {
	return 0, nil
}
func (m *mockSaleRepository) NextSequence(ctx context.Context) (uint, error) { return 1, nil }
func (m *mockSaleRepository) FindItemsBySaleID(ctx context.Context, saleID uint) ([]*sale.Item, error) {
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
