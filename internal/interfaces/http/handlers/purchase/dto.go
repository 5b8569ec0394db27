package purchase

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/purchase/usecases"
)

type PurchaseItemRequest struct {
	ProductID uint    `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unit_price" binding:"min=0"`
}

type CreatePurchaseRequest struct {
	SupplierName string                `json:"supplier_name" binding:"required,max=100"`
	Items        []PurchaseItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes        string                `json:"notes" binding:"max=1000"`
}

func (r *CreatePurchaseRequest) ToCommand(userID uint) usecases.CreatePurchaseCommand {
	items := make([]usecases.PurchaseItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, usecases.PurchaseItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return usecases.CreatePurchaseCommand{
		SupplierName: r.SupplierName,
		UserID:       userID,
		Items:        items,
		Notes:        r.Notes,
	}
}

type ListPurchasesRequest struct {
	Status   string
	Search   string
	Page     int
	PageSize int
}

func (r *ListPurchasesRequest) ToQuery() usecases.ListPurchasesQuery {
	return usecases.ListPurchasesQuery{
		Status:   r.Status,
		Search:   r.Search,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseListPurchasesRequest(c *gin.Context) *ListPurchasesRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "15"))

	return &ListPurchasesRequest{
		Status:   c.Query("status"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}
}
