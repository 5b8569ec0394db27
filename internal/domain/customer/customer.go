// Package customer holds the workshop's customer records. Customers own
// service tickets and sales; deleting a customer cascades to both.
package customer

import (
	"fmt"
	"time"
)

type Customer struct {
	id        uint
	name      string
	email     string
	phone     string
	address   string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name, email, phone, address string) (*Customer, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(phone) == 0 {
		return nil, fmt.Errorf("phone is required")
	}

	now := time.Now().UTC()
	return &Customer{
		name:      name,
		email:     email,
		phone:     phone,
		address:   address,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCustomer(id uint, name, email, phone, address string, createdAt, updatedAt time.Time) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		address:   address,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Customer) ID() uint             { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Address() string      { return c.address }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

// UpdateContact replaces the customer's contact information.
func (c *Customer) UpdateContact(name, email, phone, address string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(phone) == 0 {
		return fmt.Errorf("phone is required")
	}

	c.name = name
	c.email = email
	c.phone = phone
	c.address = address
	c.updatedAt = time.Now().UTC()
	return nil
}
