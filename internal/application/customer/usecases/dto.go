package usecases

import (
	"time"

	"github.com/bengkellab/bengkel/internal/domain/customer"
)

// CustomerDTO is the transport representation of a customer returned by
// the use cases.
type CustomerDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCustomerDTO(c *customer.Customer) *CustomerDTO {
	return &CustomerDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		Address:   c.Address(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toCustomerDTOs(customers []*customer.Customer) []*CustomerDTO {
	dtos := make([]*CustomerDTO, 0, len(customers))
	for _, c := range customers {
		dtos = append(dtos, toCustomerDTO(c))
	}
	return dtos
}
