package sale

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/sale/usecases"
)

type SaleItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CreateSaleRequest struct {
	CustomerID     uint              `json:"customer_id" binding:"required"`
	Items          []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxAmount      float64           `json:"tax_amount" binding:"min=0"`
	DiscountAmount float64           `json:"discount_amount" binding:"min=0"`
	Notes          string            `json:"notes" binding:"max=1000"`
}

func (r *CreateSaleRequest) ToCommand(salesUserID uint) usecases.CreateSaleCommand {
	items := make([]usecases.SaleItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecases.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return usecases.CreateSaleCommand{
		CustomerID:     r.CustomerID,
		SalesUserID:    salesUserID,
		Items:          items,
		TaxAmount:      r.TaxAmount,
		DiscountAmount: r.DiscountAmount,
		Notes:          r.Notes,
	}
}

type ListSalesRequest struct {
	PaymentStatus string
	Search        string
	CustomerID    uint
	Page          int
	PageSize      int
}

func (r *ListSalesRequest) ToQuery() usecases.ListSalesQuery {
	return usecases.ListSalesQuery{
		PaymentStatus: r.PaymentStatus,
		Search:        r.Search,
		CustomerID:    r.CustomerID,
		Page:          r.Page,
		PageSize:      r.PageSize,
	}
}

func parseListSalesRequest(c *gin.Context) *ListSalesRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "15"))
	customerID, _ := strconv.ParseUint(c.Query("customer_id"), 10, 32)

	return &ListSalesRequest{
		PaymentStatus: c.Query("payment_status"),
		Search:        c.Query("search"),
		CustomerID:    uint(customerID),
		Page:          page,
		PageSize:      pageSize,
	}
}
