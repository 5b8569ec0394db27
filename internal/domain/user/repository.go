package user

import (
	"context"

	"github.com/bengkellab/bengkel/internal/shared/authorization"
)

// Repository defines the persistence contract for users.
type Repository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	// Delete removes the user; service tickets referencing them keep the
	// record with technician_id set to NULL.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, error)
	// ListTechnicians returns active technician accounts for assignment
	// dropdowns, ordered by name.
	ListTechnicians(ctx context.Context) ([]*User, error)
	Count(ctx context.Context, filter Filter) (int64, error)
}

// Filter holds the query criteria for listing users.
type Filter struct {
	Search   string // matches name or email
	Role     authorization.UserRole
	IsActive *bool
	Page     int
	PageSize int
}
