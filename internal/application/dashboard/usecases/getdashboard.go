// Package usecases assembles the role dashboard: entity counts, ticket
// status breakdown, this month's paid revenue, low stock alerts, and the
// most recent tickets and invoices.
package usecases

import (
	"context"
	"time"

	"github.com/bengkellab/bengkel/internal/domain/customer"
	"github.com/bengkellab/bengkel/internal/domain/product"
	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/domain/service"
	"github.com/bengkellab/bengkel/internal/shared/authorization"
	"github.com/bengkellab/bengkel/internal/shared/biztime"
	"github.com/bengkellab/bengkel/internal/shared/logger"
)

const recentLimit = 5

// GetDashboardQuery carries the caller's identity so the recent lists can be
// scoped: technicians see their own tickets, sales users their own invoices.
type GetDashboardQuery struct {
	UserID uint
	Role   authorization.UserRole
}

type ServiceSummaryDTO struct {
	ID            uint    `json:"id"`
	ServiceNumber string  `json:"service_number"`
	CustomerID    uint    `json:"customer_id"`
	LaptopBrand   string  `json:"laptop_brand"`
	LaptopModel   string  `json:"laptop_model"`
	Status        string  `json:"status"`
	TotalCost     float64 `json:"total_cost"`
}

type SaleSummaryDTO struct {
	ID            uint    `json:"id"`
	InvoiceNumber string  `json:"invoice_number"`
	CustomerID    uint    `json:"customer_id"`
	TotalAmount   float64 `json:"total_amount"`
	PaymentStatus string  `json:"payment_status"`
}

type LowStockDTO struct {
	ID            uint   `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	StockQuantity int    `json:"stock_quantity"`
	MinStockLevel int    `json:"min_stock_level"`
}

type DashboardResult struct {
	TotalCustomers  int64                `json:"total_customers"`
	TotalProducts   int64                `json:"total_products"`
	LowStockCount   int64                `json:"low_stock_count"`
	ServicesByState map[string]int64     `json:"services_by_status"`
	MonthlyRevenue  float64              `json:"monthly_revenue"`
	RecentServices  []*ServiceSummaryDTO `json:"recent_services"`
	RecentSales     []*SaleSummaryDTO    `json:"recent_sales"`
	LowStockItems   []*LowStockDTO       `json:"low_stock_items"`
}

type GetDashboardUseCase struct {
	customerRepo customer.Repository
	productRepo  product.Repository
	serviceRepo  service.Repository
	saleRepo     sale.Repository
	logger       logger.Interface
}

func NewGetDashboardUseCase(
	customerRepo customer.Repository,
	productRepo product.Repository,
	serviceRepo service.Repository,
	saleRepo sale.Repository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		customerRepo: customerRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		saleRepo:     saleRepo,
		logger:       logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, query GetDashboardQuery) (*DashboardResult, error) {
	result := &DashboardResult{
		ServicesByState: make(map[string]int64),
	}

	totalCustomers, err := uc.customerRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count customers", "error", err)
		return nil, err
	}
	result.TotalCustomers = totalCustomers

	totalProducts, err := uc.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	result.TotalProducts = totalProducts

	lowStockCount, err := uc.productRepo.CountLowStock(ctx)
	if err != nil {
		return nil, err
	}
	result.LowStockCount = lowStockCount

	for _, status := range service.AllStatuses() {
		count, err := uc.serviceRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		result.ServicesByState[status.String()] = count
	}

	from, to := biztime.MonthBoundsUTC(time.Now())
	revenue, err := uc.saleRepo.SumPaidBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	result.MonthlyRevenue = revenue

	var technicianID *uint
	if query.Role.IsTechnician() {
		technicianID = &query.UserID
	}
	recentServices, err := uc.serviceRepo.FindRecent(ctx, recentLimit, technicianID)
	if err != nil {
		return nil, err
	}
	for _, s := range recentServices {
		result.RecentServices = append(result.RecentServices, &ServiceSummaryDTO{
			ID:            s.ID(),
			ServiceNumber: s.ServiceNumber(),
			CustomerID:    s.CustomerID(),
			LaptopBrand:   s.LaptopBrand(),
			LaptopModel:   s.LaptopModel(),
			Status:        s.Status().String(),
			TotalCost:     s.TotalCost(),
		})
	}

	// Technicians work off the service queue; they get no invoice listing.
	if !query.Role.IsTechnician() {
		var salesUserID *uint
		if query.Role.IsSales() {
			salesUserID = &query.UserID
		}
		recentSales, err := uc.saleRepo.FindRecent(ctx, recentLimit, salesUserID)
		if err != nil {
			return nil, err
		}
		for _, s := range recentSales {
			result.RecentSales = append(result.RecentSales, &SaleSummaryDTO{
				ID:            s.ID(),
				InvoiceNumber: s.InvoiceNumber(),
				CustomerID:    s.CustomerID(),
				TotalAmount:   s.TotalAmount(),
				PaymentStatus: s.PaymentStatus().String(),
			})
		}
	}

	// Restock alerts are only actionable for administrators.
	if query.Role.IsAdministrator() {
		lowStock, err := uc.productRepo.FindActiveLowStock(ctx, recentLimit)
		if err != nil {
			return nil, err
		}
		for _, p := range lowStock {
			result.LowStockItems = append(result.LowStockItems, &LowStockDTO{
				ID:            p.ID(),
				Code:          p.Code(),
				Name:          p.Name(),
				StockQuantity: p.StockQuantity(),
				MinStockLevel: p.MinStockLevel(),
			})
		}
	}

	return result, nil
}
