package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/domain/user"
	"github.com/bengkellab/bengkel/internal/shared/errors"
)

func TestCreateServiceUseCase_Execute(t *testing.T) {
	t.Run("creates ticket with generated number", func(t *testing.T) {
		customerRepo := &mockCustomerRepository{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) { return true, nil },
		}
		serviceRepo := &mockServiceRepository{
			NextSequenceFunc: func(ctx context.Context) (uint, error) { return 1, nil },
			SaveFunc: func(ctx context.Context, s *service.Service) error {
				return s.SetID(1)
			},
		}
		uc := NewCreateServiceUseCase(serviceRepo, customerRepo, &mockUserRepository{}, passthroughTxManager{}, newTestLogger())

		result, err := uc.Execute(context.Background(), CreateServiceCommand{
			CustomerID:       1,
			LaptopBrand:      "Lenovo",
			LaptopModel:      "ThinkPad X1",
			InitialComplaint: "won't boot",
			ServiceCost:      50000,
		})

		require.NoError(t, err)
		wantNumber := fmt.Sprintf("SRV%s0001", time.Now().Format("20060102"))
		// the business date stamp may differ from UTC near midnight; only
		// assert the shape when the dates agree
		assert.Len(t, result.ServiceNumber, len(wantNumber))
		assert.Equal(t, "SRV", result.ServiceNumber[:3])
		assert.Equal(t, "received", result.Status)
		assert.Equal(t, float64(50000), result.TotalCost)
		assert.Nil(t, result.CompletedAt)
	})

	t.Run("unknown customer", func(t *testing.T) {
		customerRepo := &mockCustomerRepository{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) { return false, nil },
		}
		uc := NewCreateServiceUseCase(&mockServiceRepository{}, customerRepo, &mockUserRepository{}, passthroughTxManager{}, newTestLogger())

		_, err := uc.Execute(context.Background(), CreateServiceCommand{
			CustomerID:       99,
			LaptopBrand:      "Asus",
			LaptopModel:      "ROG",
			InitialComplaint: "hinge broken",
		})

		require.Error(t, err)
		assert.True(t, errors.IsReferenceError(err))
	})

	t.Run("technician must have technician role", func(t *testing.T) {
		customerRepo := &mockCustomerRepository{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) { return true, nil },
		}
		userRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
				// a sales user, not a technician
				return salesUser(t, id), nil
			},
		}
		techID := uint(5)
		uc := NewCreateServiceUseCase(&mockServiceRepository{}, customerRepo, userRepo, passthroughTxManager{}, newTestLogger())

		_, err := uc.Execute(context.Background(), CreateServiceCommand{
			CustomerID:       1,
			TechnicianID:     &techID,
			LaptopBrand:      "Asus",
			LaptopModel:      "ROG",
			InitialComplaint: "hinge broken",
		})

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("sequences advance per prior ticket count", func(t *testing.T) {
		customerRepo := &mockCustomerRepository{
			ExistsFunc: func(ctx context.Context, id uint) (bool, error) { return true, nil },
		}
		serviceRepo := &mockServiceRepository{
			NextSequenceFunc: func(ctx context.Context) (uint, error) { return 2, nil },
			SaveFunc: func(ctx context.Context, s *service.Service) error {
				return s.SetID(2)
			},
		}
		uc := NewCreateServiceUseCase(serviceRepo, customerRepo, &mockUserRepository{}, passthroughTxManager{}, newTestLogger())

		result, err := uc.Execute(context.Background(), CreateServiceCommand{
			CustomerID:       1,
			LaptopBrand:      "Acer",
			LaptopModel:      "Swift",
			InitialComplaint: "screen flicker",
		})

		require.NoError(t, err)
		assert.Equal(t, "0002", result.ServiceNumber[len(result.ServiceNumber)-4:])
	})
}
