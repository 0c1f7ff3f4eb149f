package rbac_test

import (
	"errors"
	"testing"

	"go-employee-api/internal/domain"
	"go-employee-api/internal/rbac"
	"go-employee-api/internal/rbac/infra"
	rbacMock "go-employee-api/internal/rbac/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newLoadedService(t *testing.T) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc := rbac.NewService(rbac.NewHierarchyRepository(), enforcer, zap.NewNop())
	assert.NoError(t, svc.LoadPolicy())
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newLoadedService(t)

	cases := []struct {
		role   domain.EmployeeRole
		action string
		want   bool
	}{
		{domain.RoleEmployee, domain.ActionRead, true},
		{domain.RoleEmployee, domain.ActionUpdate, true},
		{domain.RoleEmployee, domain.ActionCreate, false},
		{domain.RoleManager, domain.ActionCreate, true},
		{domain.RoleManager, domain.ActionRead, true},
		{domain.RoleDirector, domain.ActionCreate, true},
		{domain.RoleAdministrator, domain.ActionCreate, true},
		{domain.RoleAdministrator, "delete", false},
	}

	for _, tc := range cases {
		t.Run(tc.role.String()+"_"+tc.action, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				Role:     tc.role,
				Resource: domain.ResourceEmployee,
				Action:   tc.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.want, allowed)
		})
	}

	t.Run("unknown role", func(t *testing.T) {
		_, err := svc.Enforce(domain.EnforceRequest{Role: 42, Resource: domain.ResourceEmployee, Action: domain.ActionRead})
		assert.ErrorIs(t, err, domain.ErrUnknownRole)
	})

	t.Run("unknown resource", func(t *testing.T) {
		allowed, err := svc.Enforce(domain.EnforceRequest{Role: domain.RoleAdministrator, Resource: "payroll", Action: domain.ActionRead})
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}

func TestRBACService_PermissionsFor(t *testing.T) {
	svc := newLoadedService(t)

	perms, err := svc.PermissionsFor(domain.RoleEmployee)
	assert.NoError(t, err)
	assert.Len(t, perms, 2)

	perms, err = svc.PermissionsFor(domain.RoleDirector)
	assert.NoError(t, err)
	assert.Contains(t, perms, []string{"Employee", domain.ResourceEmployee, domain.ActionRead})
	assert.Contains(t, perms, []string{"Manager", domain.ResourceEmployee, domain.ActionCreate})
}

func TestRBACService_LoadPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("inheritance error", func(t *testing.T) {
		enforcer, err := infra.NewEnforcer()
		assert.NoError(t, err)

		repo := rbacMock.NewMockRepository(ctrl)
		repo.EXPECT().GetRoleInheritance().Return(nil, errors.New("boom"))

		svc := rbac.NewService(repo, enforcer, zap.NewNop())
		assert.Error(t, svc.LoadPolicy())
	})

	t.Run("permissions error", func(t *testing.T) {
		enforcer, err := infra.NewEnforcer()
		assert.NoError(t, err)

		repo := rbacMock.NewMockRepository(ctrl)
		repo.EXPECT().GetRoleInheritance().Return([]rbac.InheritanceRow{{Role: "Manager", Inherits: "Employee"}}, nil)
		repo.EXPECT().GetRolePermissions().Return(nil, errors.New("boom"))

		svc := rbac.NewService(repo, enforcer, zap.NewNop())
		assert.Error(t, svc.LoadPolicy())
	})

	t.Run("reload replaces rules", func(t *testing.T) {
		enforcer, err := infra.NewEnforcer()
		assert.NoError(t, err)

		repo := rbacMock.NewMockRepository(ctrl)
		repo.EXPECT().GetRoleInheritance().Return(nil, nil).Times(2)
		gomock.InOrder(
			repo.EXPECT().GetRolePermissions().Return([]rbac.PermissionRow{
				{Role: "Employee", Resource: domain.ResourceEmployee, Action: domain.ActionCreate},
			}, nil),
			repo.EXPECT().GetRolePermissions().Return([]rbac.PermissionRow{}, nil),
		)

		svc := rbac.NewService(repo, enforcer, zap.NewNop())
		req := domain.EnforceRequest{Role: domain.RoleEmployee, Resource: domain.ResourceEmployee, Action: domain.ActionCreate}

		assert.NoError(t, svc.LoadPolicy())
		allowed, err := svc.Enforce(req)
		assert.NoError(t, err)
		assert.True(t, allowed)

		assert.NoError(t, svc.LoadPolicy())
		allowed, err = svc.Enforce(req)
		assert.NoError(t, err)
		assert.False(t, allowed)
	})
}
