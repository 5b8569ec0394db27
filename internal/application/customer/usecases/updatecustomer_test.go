package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/shared/errors"
)

func existingCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.ReconstructCustomer(1, "Budi", "budi@mail.test", "081234567890", "Jl. Merdeka 1", time.Now(), time.Now())
	require.NoError(t, err)
	return c
}

func TestUpdateCustomerUseCase_Execute(t *testing.T) {
	t.Run("updates contact fields", func(t *testing.T) {
		repo := &mockCustomerRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
				return existingCustomer(t), nil
			},
		}
		uc := NewUpdateCustomerUseCase(repo, newTestLogger())

		result, err := uc.Execute(context.Background(), UpdateCustomerCommand{
			CustomerID: 1,
			Name:       "Budi Santoso",
			Phone:      "089876543210",
		})

		require.NoError(t, err)
		assert.Equal(t, "Budi Santoso", result.Name)
		assert.Equal(t, "089876543210", result.Phone)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockCustomerRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
				return nil, nil
			},
		}
		uc := NewUpdateCustomerUseCase(repo, newTestLogger())

		_, err := uc.Execute(context.Background(), UpdateCustomerCommand{CustomerID: 99, Name: "X", Phone: "08"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("rejects zero ID", func(t *testing.T) {
		uc := NewUpdateCustomerUseCase(&mockCustomerRepository{}, newTestLogger())

		_, err := uc.Execute(context.Background(), UpdateCustomerCommand{})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestDeleteCustomerUseCase_Execute(t *testing.T) {
	t.Run("deletes existing customer", func(t *testing.T) {
		deleted := false
		repo := &mockCustomerRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
				return existingCustomer(t), nil
			},
			DeleteFunc: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		}
		uc := NewDeleteCustomerUseCase(repo, newTestLogger())

		err := uc.Execute(context.Background(), DeleteCustomerCommand{CustomerID: 1})

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockCustomerRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
				return nil, nil
			},
		}
		uc := NewDeleteCustomerUseCase(repo, newTestLogger())

		err := uc.Execute(context.Background(), DeleteCustomerCommand{CustomerID: 99})

		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestListCustomersUseCase_Execute(t *testing.T) {
	repo := &mockCustomerRepository{
		ListFunc: func(ctx context.Context, filter customer.Filter) ([]*customer.Customer, int64, error) {
			assert.Equal(t, 1, filter.Page)
			assert.Equal(t, 15, filter.PageSize)
			return []*customer.Customer{existingCustomer(t)}, 1, nil
		},
	}
	uc := NewListCustomersUseCase(repo, newTestLogger())

	result, err := uc.Execute(context.Background(), ListCustomersQuery{})

	require.NoError(t, err)
	assert.Len(t, result.Customers, 1)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 15, result.PageSize)
}
