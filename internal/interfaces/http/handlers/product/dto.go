package product

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/product/usecases"
)

type CreateProductRequest struct {
	Code          string  `json:"code" binding:"required,max=50"`
	Name          string  `json:"name" binding:"required,max=100"`
	Description   string  `json:"description" binding:"max=1000"`
	Category      string  `json:"category" binding:"required,oneof=laptop_part accessory consumable other"`
	Price         float64 `json:"price" binding:"min=0"`
	Cost          float64 `json:"cost" binding:"min=0"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
	MinStockLevel int     `json:"min_stock_level" binding:"min=0"`
}

func (r *CreateProductRequest) ToCommand() usecases.CreateProductCommand {
	return usecases.CreateProductCommand{
		Code:          r.Code,
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		Price:         r.Price,
		Cost:          r.Cost,
		StockQuantity: r.StockQuantity,
		MinStockLevel: r.MinStockLevel,
	}
}

type UpdateProductRequest struct {
	Code          string  `json:"code" binding:"required,max=50"`
	Name          string  `json:"name" binding:"required,max=100"`
	Description   string  `json:"description" binding:"max=1000"`
	Category      string  `json:"category" binding:"required,oneof=laptop_part accessory consumable other"`
	Price         float64 `json:"price" binding:"min=0"`
	Cost          float64 `json:"cost" binding:"min=0"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
	MinStockLevel int     `json:"min_stock_level" binding:"min=0"`
	Status        string  `json:"status" binding:"required,oneof=active inactive"`
}

func (r *UpdateProductRequest) ToCommand(productID uint) usecases.UpdateProductCommand {
	return usecases.UpdateProductCommand{
		ProductID:     productID,
		Code:          r.Code,
		Name:          r.Name,
		Description:   r.Description,
		Category:      r.Category,
		Price:         r.Price,
		Cost:          r.Cost,
		StockQuantity: r.StockQuantity,
		MinStockLevel: r.MinStockLevel,
		Status:        r.Status,
	}
}

type ListProductsRequest struct {
	Search   string
	Category string
	Status   string
	LowStock bool
	Page     int
	PageSize int
}

func (r *ListProductsRequest) ToQuery() usecases.ListProductsQuery {
	return usecases.ListProductsQuery{
		Search:   r.Search,
		Category: r.Category,
		Status:   r.Status,
		LowStock: r.LowStock,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseListProductsRequest(c *gin.Context) *ListProductsRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "15"))

	return &ListProductsRequest{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
		LowStock: c.Query("low_stock") == "true",
		Page:     page,
		PageSize: pageSize,
	}
}
