package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
	"github.com/bengkellab/bengkel/internal/shared/biztime"
)

func TestGetDashboardUseCase_Execute(t *testing.T) {
	now := time.Now()

	svc, err := service.ReconstructService(
		1, "SRV202501150001", 1, nil,
		"Lenovo", "ThinkPad X1", "SN-100", "won't boot", "", "",
		service.StatusRepair, 50000, 20000, 70000, true,
		now, nil, now, now,
	)
	require.NoError(t, err)

	inv, err := sale.ReconstructSale(
		1, "INV202501150001", 1, 2,
		115000, 11500, 6500, 120000,
		sale.PaymentPaid, now, "", now, now,
	)
	require.NoError(t, err)

	thermal, err := product.ReconstructProduct(
		3, "TP01", "Thermal Paste", "", product.CategoryConsumable,
		35000, 20000, 2, 10, product.StatusActive, now, now,
	)
	require.NoError(t, err)

	statusCounts := map[service.Status]int64{
		service.StatusReceived:  3,
		service.StatusRepair:    2,
		service.StatusCompleted: 7,
	}

	customerRepo := &mockCustomerRepository{
		CountFunc: func(ctx context.Context) (int64, error) { return 42, nil },
	}
	productRepo := &mockProductRepository{
		CountFunc:         func(ctx context.Context) (int64, error) { return 18, nil },
		CountLowStockFunc: func(ctx context.Context) (int64, error) { return 1, nil },
		FindActiveLowStockFunc: func(ctx context.Context, limit int) ([]*product.Product, error) {
			return []*product.Product{thermal}, nil
		},
	}
	serviceRepo := &mockServiceRepository{
		CountByStatusFunc: func(ctx context.Context, status service.Status) (int64, error) {
			return statusCounts[status], nil
		},
		FindRecentFunc: func(ctx context.Context, limit int, technicianID *uint) ([]*service.Service, error) {
			assert.Equal(t, recentLimit, limit)
			assert.Nil(t, technicianID)
			return []*service.Service{svc}, nil
		},
	}
	var revenueFrom, revenueTo time.Time
	saleRepo := &mockSaleRepository{
		SumPaidBetweenFunc: func(ctx context.Context, from, to time.Time) (float64, error) {
			revenueFrom, revenueTo = from, to
			return 250000, nil
		},
		FindRecentFunc: func(ctx context.Context, limit int, salesUserID *uint) ([]*sale.Sale, error) {
			assert.Nil(t, salesUserID)
			return []*sale.Sale{inv}, nil
		},
	}

	uc := NewGetDashboardUseCase(customerRepo, productRepo, serviceRepo, saleRepo, newTestLogger())

	result, err := uc.Execute(context.Background(), GetDashboardQuery{UserID: 9, Role: authorization.RoleAdministrator})
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.TotalCustomers)
	assert.Equal(t, int64(18), result.TotalProducts)
	assert.Equal(t, int64(1), result.LowStockCount)
	assert.Equal(t, float64(250000), result.MonthlyRevenue)

	assert.Equal(t, int64(3), result.ServicesByState["received"])
	assert.Equal(t, int64(2), result.ServicesByState["repair"])
	assert.Equal(t, int64(7), result.ServicesByState["completed"])
	assert.Equal(t, int64(0), result.ServicesByState["diagnosis"])
	assert.Len(t, result.ServicesByState, len(service.AllStatuses()))

	require.Len(t, result.RecentServices, 1)
	assert.Equal(t, "SRV202501150001", result.RecentServices[0].ServiceNumber)
	assert.Equal(t, float64(70000), result.RecentServices[0].TotalCost)

	require.Len(t, result.RecentSales, 1)
	assert.Equal(t, "INV202501150001", result.RecentSales[0].InvoiceNumber)
	assert.Equal(t, "paid", result.RecentSales[0].PaymentStatus)

	require.Len(t, result.LowStockItems, 1)
	assert.Equal(t, "TP01", result.LowStockItems[0].Code)
	assert.Equal(t, 2, result.LowStockItems[0].StockQuantity)

	// Revenue window covers the current business month.
	assert.Equal(t, 1, revenueFrom.In(biztime.Location()).Day())
	assert.True(t, revenueTo.After(revenueFrom))
	assert.False(t, now.Before(revenueFrom))
	assert.True(t, now.Before(revenueTo))
}

func TestGetDashboardUseCase_Execute_TechnicianScope(t *testing.T) {
	serviceRepo := &mockServiceRepository{
		FindRecentFunc: func(ctx context.Context, limit int, technicianID *uint) ([]*service.Service, error) {
			require.NotNil(t, technicianID)
			assert.Equal(t, uint(7), *technicianID)
			return nil, nil
		},
	}
	saleRepo := &mockSaleRepository{
		FindRecentFunc: func(ctx context.Context, limit int, salesUserID *uint) ([]*sale.Sale, error) {
			t.Fatal("technicians must not see the invoice listing")
			return nil, nil
		},
	}
	productRepo := &mockProductRepository{
		FindActiveLowStockFunc: func(ctx context.Context, limit int) ([]*product.Product, error) {
			t.Fatal("technicians must not see restock alerts")
			return nil, nil
		},
	}

	uc := NewGetDashboardUseCase(&mockCustomerRepository{}, productRepo, serviceRepo, saleRepo, newTestLogger())

	result, err := uc.Execute(context.Background(), GetDashboardQuery{UserID: 7, Role: authorization.RoleTechnician})
	require.NoError(t, err)
	assert.Empty(t, result.RecentSales)
	assert.Empty(t, result.LowStockItems)
}

func TestGetDashboardUseCase_Execute_SalesScope(t *testing.T) {
	saleRepo := &mockSaleRepository{
		FindRecentFunc: func(ctx context.Context, limit int, salesUserID *uint) ([]*sale.Sale, error) {
			require.NotNil(t, salesUserID)
			assert.Equal(t, uint(3), *salesUserID)
			return nil, nil
		},
	}
	serviceRepo := &mockServiceRepository{
		FindRecentFunc: func(ctx context.Context, limit int, technicianID *uint) ([]*service.Service, error) {
			assert.Nil(t, technicianID)
			return nil, nil
		},
	}

	uc := NewGetDashboardUseCase(&mockCustomerRepository{}, &mockProductRepository{}, serviceRepo, saleRepo, newTestLogger())

	result, err := uc.Execute(context.Background(), GetDashboardQuery{UserID: 3, Role: authorization.RoleSales})
	require.NoError(t, err)
	assert.Empty(t, result.LowStockItems)
}

func TestGetDashboardUseCase_Execute_RepositoryError(t *testing.T) {
	customerRepo := &mockCustomerRepository{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 0, assert.AnError
		},
	}

	uc := NewGetDashboardUseCase(
		customerRepo,
		&mockProductRepository{},
		&mockServiceRepository{},
		&mockSaleRepository{},
		newTestLogger(),
	)

	result, err := uc.Execute(context.Background(), GetDashboardQuery{Role: authorization.RoleAdministrator})
	assert.Error(t, err)
	assert.Nil(t, result)
}
