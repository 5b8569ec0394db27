package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type mockCustomerRepository struct {
	SaveFunc     func(ctx context.Context, c *customer.Customer) error
	UpdateFunc   func(ctx context.Context, c *customer.Customer) error
	DeleteFunc   func(ctx context.Context, id uint) error
	FindByIDFunc func(ctx context.Context, id uint) (*customer.Customer, error)
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
	ListFunc     func(ctx context.Context, filter customer.Filter) ([]*customer.Customer, int64, error)
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *mockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return false, nil
}

func (m *mockCustomerRepository) List(ctx context.Context, filter customer.Filter) ([]*customer.Customer, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockCustomerRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
