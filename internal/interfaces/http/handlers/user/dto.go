package user

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bengkellab/bengkel/internal/application/user/usecases"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=administrator technician sales"`
}

func (r *CreateUserRequest) ToCommand() usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}

type UpdateUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Role     string `json:"role" binding:"required,oneof=administrator technician sales"`
	IsActive *bool  `json:"is_active"`
}

func (r *UpdateUserRequest) ToCommand(userID uint) usecases.UpdateUserCommand {
	return usecases.UpdateUserCommand{
		UserID:   userID,
		Name:     r.Name,
		Email:    r.Email,
		Role:     r.Role,
		IsActive: r.IsActive,
	}
}

type ListUsersRequest struct {
	Search   string
	Role     string
	IsActive *bool
	Page     int
	PageSize int
}

func (r *ListUsersRequest) ToQuery() usecases.ListUsersQuery {
	return usecases.ListUsersQuery{
		Search:   r.Search,
		Role:     r.Role,
		IsActive: r.IsActive,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}

func parseListUsersRequest(c *gin.Context) *ListUsersRequest {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "15"))

	req := &ListUsersRequest{
		Search:   c.Query("search"),
		Role:     c.Query("role"),
		Page:     page,
		PageSize: pageSize,
	}

	if activeStr := c.Query("is_active"); activeStr != "" {
		active := activeStr == "true"
		req.IsActive = &active
	}

	return req
}
