package usecases

import (
	"context"

	"github.com/bengkellab/bengkel/internal/domain/sale"
	"github.com/bengkellab/bengkel/internal/shared/errors"
	"github.com/bengkellab/bengkel/internal/shared/logger"
	"github.com/bengkellab/bengkel/internal/shared/utils"
)

type ListSalesQuery struct {
	PaymentStatus string
	Search        string
	CustomerID    uint
	// SalesUserID scopes results to one seller's invoices; set by the
	// caller for sales users.
	SalesUserID uint
	Page        int
	PageSize    int
}

type ListSalesResult struct {
	Sales    []*SaleDTO
	Total    int64
	Page     int
	PageSize int
}

type ListSalesUseCase struct {
	saleRepo sale.Repository
	logger   logger.Interface
}

func NewListSalesUseCase(
	saleRepo sale.Repository,
	logger logger.Interface,
) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
		logger:   logger,
	}
}

func (uc *ListSalesUseCase) Execute(ctx context.Context, query ListSalesQuery) (*ListSalesResult, error) {
	if query.PaymentStatus != "" && !sale.PaymentStatus(query.PaymentStatus).IsValid() {
		return nil, errors.NewValidationError("invalid payment status: " + query.PaymentStatus)
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)

	filter := sale.Filter{
		PaymentStatus: sale.PaymentStatus(query.PaymentStatus),
		Search:        query.Search,
		CustomerID:    query.CustomerID,
		SalesUserID:   query.SalesUserID,
		Page:          p.Page,
		PageSize:      p.PageSize,
	}

	total, err := uc.saleRepo.Count(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to count sales", "error", err)
		return nil, err
	}

	sales, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list sales", "error", err)
		return nil, err
	}

	return &ListSalesResult{
		Sales:    toSaleDTOs(sales),
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}, nil
}
