package customer

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/customer/usecases"
)

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"omitempty,email,max=100"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Address string `json:"address" binding:"max=500"`
}

func (r *CreateCustomerRequest) ToCommand() usecases.CreateCustomerCommand {
	return usecases.CreateCustomerCommand{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"omitempty,email,max=100"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Address string `json:"address" binding:"max=500"`
}

func (r *UpdateCustomerRequest) ToCommand(customerID uint) usecases.UpdateCustomerCommand {
	return usecases.UpdateCustomerCommand{
		CustomerID: customerID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
	}
}

type ListCustomersRequest struct {
	Search   string
	Page     int
	PageSize int
}

func (r *ListCustomersRequest) ToQuery() usecases.ListCustomersQuery {
	return usecases.ListCustomersQuery{
		Search:   r.Search,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseListCustomersRequest(c *gin.Context) *ListCustomersRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "15"))

	return &ListCustomersRequest{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}
}
