// Package user holds workshop staff accounts. A user's role (administrator,
// technician, sales) gates route access at the HTTP boundary; technicians
// additionally only see service tickets assigned to them.
package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/bengkellab/bengkel/internal/shared/authorization"
)

type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         authorization.UserRole
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, passwordHash string, role authorization.UserRole) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &User{
		name:         name,
		email:        strings.ToLower(email),
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name, email, passwordHash string,
	role authorization.UserRole,
	isActive bool,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                      { return u.id }
func (u *User) Name() string                  { return u.name }
func (u *User) Email() string                 { return u.email }
func (u *User) PasswordHash() string          { return u.passwordHash }
func (u *User) Role() authorization.UserRole  { return u.role }
func (u *User) IsActive() bool                { return u.isActive }
func (u *User) CreatedAt() time.Time          { return u.createdAt }
func (u *User) UpdatedAt() time.Time          { return u.updatedAt }

func (u *User) IsTechnician() bool   { return u.role.IsTechnician() }
func (u *User) IsSales() bool        { return u.role.IsSales() }
func (u *User) IsAdministrator() bool { return u.role.IsAdministrator() }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// UpdateProfile replaces name and email.
func (u *User) UpdateProfile(name, email string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(email) == 0 || !strings.Contains(email, "@") {
		return fmt.Errorf("a valid email is required")
	}

	u.name = name
	u.email = strings.ToLower(email)
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

func (u *User) Activate() {
	u.isActive = true
	u.updatedAt = time.Now().UTC()
}

func (u *User) Deactivate() {
	u.isActive = false
	u.updatedAt = time.Now().UTC()
}
