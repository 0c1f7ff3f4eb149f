package rbac

import (
	"go-employee-api/internal/domain"
)

type PermissionRow struct {
	Role     string
	Resource string
	Action   string
}

// InheritanceRow says Role inherits every permission of Inherits.
type InheritanceRow struct {
	Role     string
	Inherits string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions() ([]PermissionRow, error)
	GetRoleInheritance() ([]InheritanceRow, error)
}

type hierarchyRepository struct{}

// NewHierarchyRepository derives the route permissions from the role
// hierarchy: everyone reads and updates (the service narrows updates to
// self or subordinates), elevated roles also create.
func NewHierarchyRepository() Repository {
	return hierarchyRepository{}
}

func (hierarchyRepository) GetRolePermissions() ([]PermissionRow, error) {
	rows := []PermissionRow{
		{Role: domain.RoleEmployee.String(), Resource: domain.ResourceEmployee, Action: domain.ActionRead},
		{Role: domain.RoleEmployee.String(), Resource: domain.ResourceEmployee, Action: domain.ActionUpdate},
	}
	for _, r := range domain.Roles() {
		if r.HasElevatedPrivileges() && len(r.ManagedRoles()) > 0 {
			rows = append(rows, PermissionRow{Role: r.String(), Resource: domain.ResourceEmployee, Action: domain.ActionCreate})
		}
	}
	return rows, nil
}

func (hierarchyRepository) GetRoleInheritance() ([]InheritanceRow, error) {
	roles := domain.Roles()
	rows := make([]InheritanceRow, 0, len(roles)-1)
	for i := 1; i < len(roles); i++ {
		rows = append(rows, InheritanceRow{Role: roles[i].String(), Inherits: roles[i-1].String()})
	}
	return rows, nil
}
