package usecases

import (
	"context"
	"time"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/domain/user"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type mockServiceRepository struct {
	SaveFunc                 func(ctx context.Context, s *service.Service) error
	UpdateFunc               func(ctx context.Context, s *service.Service) error
	DeleteFunc               func(ctx context.Context, id uint) error
	FindByIDFunc             func(ctx context.Context, id uint) (*service.Service, error)
	FindByServiceNumberFunc  func(ctx context.Context, number string) (*service.Service, error)
	ListFunc                 func(ctx context.Context, filter service.Filter) ([]*service.Service, error)
	CountFunc                func(ctx context.Context, filter service.Filter) (int64, error)
	NextSequenceFunc         func(ctx context.Context) (uint, error)
	SavePartFunc             func(ctx context.Context, p *service.Part) error
	DeletePartFunc           func(ctx context.Context, partID uint) error
	FindPartsByServiceIDFunc func(ctx context.Context, serviceID uint) ([]*service.Part, error)
	CountByStatusFunc        func(ctx context.Context, status service.Status) (int64, error)
	FindRecentFunc           func(ctx context.Context, limit int, technicianID *uint) ([]*service.Service, error)
}

func (m *mockServiceRepository) Save(ctx context.Context, s *service.Service) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockServiceRepository) Update(ctx context.Context, s *service.Service) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockServiceRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockServiceRepository) FindByID(ctx context.Context, id uint) (*service.Service, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockServiceRepository) FindByServiceNumber(ctx context.Context, number string) (*service.Service, error) {
	if m.FindByServiceNumberFunc != nil {
		return m.FindByServiceNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockServiceRepository) List(ctx context.Context, filter service.Filter) ([]*service.Service, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockServiceRepository) Count(ctx context.Context, filter service.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockServiceRepository) NextSequence(ctx context.Context) (uint, error) {
	if m.NextSequenceFunc != nil {
		return m.NextSequenceFunc(ctx)
	}
	return 1, nil
}

func (m *mockServiceRepository) SavePart(ctx context.Context, p *service.Part) error {
	if m.SavePartFunc != nil {
		return m.SavePartFunc(ctx, p)
	}
	return nil
}

func (m *mockServiceRepository) DeletePart(ctx context.Context, partID uint) error {
	if m.DeletePartFunc != nil {
		return m.DeletePartFunc(ctx, partID)
	}
	return nil
}

func (m *mockServiceRepository) FindPartsByServiceID(ctx context.Context, serviceID uint) ([]*service.Part, error) {
	if m.FindPartsByServiceIDFunc != nil {
		return m.FindPartsByServiceIDFunc(ctx, serviceID)
	}
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

type mockCustomerRepository struct {
	ExistsFunc   func(ctx context.Context, id uint) (bool, error)
	FindByIDFunc func(ctx context.Context, id uint) (*customer.Customer, error)
}

func (m *mockCustomerRepository) Save(ctx context.Context, c *customer.Customer) error   { return nil }
func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error              { return nil }

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
	return nil, 0, nil
}

func (m *mockCustomerRepository) Count(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }
func (m *mockUserRepository) Delete(ctx context.Context, id uint) error      { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ListTechnicians(ctx context.Context) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context, filter user.Filter) (int64, error) {
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

// passthroughTxManager runs the function directly without a database.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}

func salesUser(t interface{ Fatalf(string, ...any) }, id uint) *user.User {
	now := time.Now()
	u, err := user.ReconstructUser(
		id, "Sales", "sales@bengkel.test", "hash",
		authorization.RoleSales, true,
		now, now,
	)
	if err != nil {
		t.Fatalf("ReconstructUser() error = %v", err)
	}
	return u
}

func activeTechnician(id uint) (*user.User, error) {
	now := time.Now()
	return user.ReconstructUser(
		id, "Teknisi", "teknisi@bengkel.test", "hash",
		authorization.RoleTechnician, true,
		now, now,
	)
}
