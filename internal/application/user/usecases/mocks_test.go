package usecases

import (
	"context"
	"fmt"

	"github.com/bengkellab/bengkel/internal/domain/user"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc            func(ctx context.Context, u *user.User) error
	UpdateFunc          func(ctx context.Context, u *user.User) error
	DeleteFunc          func(ctx context.Context, id uint) error
	FindByIDFunc        func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc     func(ctx context.Context, email string) (*user.User, error)
	ListFunc            func(ctx context.Context, filter user.Filter) ([]*user.User, error)
	ListTechniciansFunc func(ctx context.Context) ([]*user.User, error)
	CountFunc           func(ctx context.Context, filter user.Filter) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockUserRepository) ListTechnicians(ctx context.Context) ([]*user.User, error) {
	if m.ListTechniciansFunc != nil {
		return m.ListTechniciansFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Count(ctx context.Context, filter user.Filter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

// plainHasher is a trivial hasher for tests: the "hash" is the password
// prefixed with a marker.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type mockJWTService struct {
	GenerateFunc func(userID uint, role authorization.UserRole) (string, int64, error)
}

func (m *mockJWTService) Generate(userID uint, role authorization.UserRole) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return "token", 3600, nil
}

type mockRateLimiter struct {
	AllowFunc         func(ctx context.Context, key string) (bool, error)
	RecordFailureFunc func(ctx context.Context, key string) error
	ResetFunc         func(ctx context.Context, key string) error
	failures          int
}

func (m *mockRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if m.AllowFunc != nil {
		return m.AllowFunc(ctx, key)
	}
	return true, nil
}

func (m *mockRateLimiter) RecordFailure(ctx context.Context, key string) error {
	m.failures++
	if m.RecordFailureFunc != nil {
		return m.RecordFailureFunc(ctx, key)
	}
	return nil
}

func (m *mockRateLimiter) Reset(ctx context.Context, key string) error {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx, key)
	}
	return nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
