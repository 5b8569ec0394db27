// Package authorization holds the workshop's role model. Roles gate which
// routes a user may reach; the domain components themselves are role-agnostic
// and only receive extra predicates (e.g. technician-scoped service lists).
package authorization

type UserRole string

const (
	RoleAdministrator UserRole = "administrator"
	RoleTechnician    UserRole = "technician"
	RoleSales         UserRole = "sales"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdministrator() bool {
	return r == RoleAdministrator
}

func (r UserRole) IsTechnician() bool {
	return r == RoleTechnician
}

func (r UserRole) IsSales() bool {
	return r == RoleSales
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleTechnician, RoleSales:
		return true
	}
	return false
}

func ParseUserRole(s string) (UserRole, bool) {
	role := UserRole(s)
	return role, role.IsValid()
}
