package user

import (
	"testing"

	"github.com/bengkellab/bengkel/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		hash     string
		role     authorization.UserRole
		wantErr  bool
	}{
		{
			name:     "valid administrator",
			userName: "Admin",
			email:    "admin@bengkel.test",
			hash:     "$2a$10$abcdefghijklmnopqrstuv",
			role:     authorization.RoleAdministrator,
			wantErr:  false,
		},
		{
			name:     "valid technician",
			userName: "Teknisi Satu",
			email:    "teknisi@bengkel.test",
			hash:     "$2a$10$abcdefghijklmnopqrstuv",
			role:     authorization.RoleTechnician,
			wantErr:  false,
		},
		{
			name:     "empty name",
			userName: "",
			email:    "x@y.test",
			hash:     "h",
			role:     authorization.RoleSales,
			wantErr:  true,
		},
		{
			name:     "invalid email",
			userName: "X",
			email:    "not-an-email",
			hash:     "h",
			role:     authorization.RoleSales,
			wantErr:  true,
		},
		{
			name:     "missing hash",
			userName: "X",
			email:    "x@y.test",
			hash:     "",
			role:     authorization.RoleSales,
			wantErr:  true,
		},
		{
			name:     "invalid role",
			userName: "X",
			email:    "x@y.test",
			hash:     "h",
			role:     authorization.UserRole("manager"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewUser(tt.userName, tt.email, tt.hash, tt.role)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewUser() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if !u.IsActive() {
				t.Error("NewUser() should create an active user")
			}
			if u.Email() != "admin@bengkel.test" && u.Email() != "teknisi@bengkel.test" {
				t.Errorf("NewUser() email = %q, expected lowercased input", u.Email())
			}
		})
	}
}

func TestUser_EmailLowercased(t *testing.T) {
	u, err := NewUser("X", "Mixed.Case@Bengkel.TEST", "h", authorization.RoleSales)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}
	if u.Email() != "mixed.case@bengkel.test" {
		t.Errorf("Email() = %q, want lowercased", u.Email())
	}
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := NewUser("X", "x@y.test", "h", authorization.RoleTechnician)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}

	if err := u.ChangeRole(authorization.RoleSales); err != nil {
		t.Fatalf("ChangeRole() error = %v", err)
	}
	if !u.IsSales() {
		t.Error("expected sales role after ChangeRole")
	}

	if err := u.ChangeRole(authorization.UserRole("owner")); err == nil {
		t.Error("ChangeRole() should reject unknown roles")
	}
}

func TestUser_Deactivate(t *testing.T) {
	u, err := NewUser("X", "x@y.test", "h", authorization.RoleTechnician)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}

	u.Deactivate()
	if u.IsActive() {
		t.Error("expected inactive after Deactivate")
	}
	u.Activate()
	if !u.IsActive() {
		t.Error("expected active after Activate")
	}
}

func TestUser_SetID(t *testing.T) {
	u, err := NewUser("X", "x@y.test", "h", authorization.RoleTechnician)
	if err != nil {
		t.Fatalf("NewUser() error = %v", err)
	}

	if err := u.SetID(0); err == nil {
		t.Error("SetID(0) should fail")
	}
	if err := u.SetID(7); err != nil {
		t.Errorf("SetID(7) error = %v", err)
	}
	if err := u.SetID(8); err == nil {
		t.Error("SetID() should fail when ID already set")
	}
}
