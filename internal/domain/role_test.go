package domain_test

import (
	"encoding/json"
	"testing"

	"go-employee-api/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeRole_CanManage(t *testing.T) {
	for _, acting := range domain.Roles() {
		for _, target := range domain.Roles() {
			want := acting == domain.RoleAdministrator ||
				(target != domain.RoleAdministrator && int(acting) > int(target))
			assert.Equalf(t, want, acting.CanManage(target), "%s -> %s", acting, target)
		}
	}

	t.Run("manager cannot create director", func(t *testing.T) {
		assert.False(t, domain.RoleManager.CanManage(domain.RoleDirector))
	})

	t.Run("peers cannot manage each other", func(t *testing.T) {
		assert.False(t, domain.RoleDirector.CanManage(domain.RoleDirector))
		assert.False(t, domain.RoleEmployee.CanManage(domain.RoleEmployee))
	})

	t.Run("only administrators reach administrators", func(t *testing.T) {
		assert.False(t, domain.RoleDirector.CanManage(domain.RoleAdministrator))
		assert.True(t, domain.RoleAdministrator.CanManage(domain.RoleAdministrator))
	})
}

func TestEmployeeRole_ManagedRoles(t *testing.T) {
	assert.NotNil(t, domain.RoleEmployee.ManagedRoles())
	assert.Empty(t, domain.RoleEmployee.ManagedRoles())
	assert.Equal(t, []domain.EmployeeRole{domain.RoleEmployee}, domain.RoleManager.ManagedRoles())
	assert.Equal(t, []domain.EmployeeRole{domain.RoleEmployee, domain.RoleManager}, domain.RoleDirector.ManagedRoles())
	assert.Equal(t,
		[]domain.EmployeeRole{domain.RoleEmployee, domain.RoleManager, domain.RoleDirector},
		domain.RoleAdministrator.ManagedRoles(),
	)

	for _, r := range domain.Roles() {
		for _, managed := range r.ManagedRoles() {
			assert.True(t, r.CanManage(managed))
		}
	}
}

func TestEmployeeRole_HasElevatedPrivileges(t *testing.T) {
	assert.False(t, domain.RoleEmployee.HasElevatedPrivileges())
	assert.True(t, domain.RoleManager.HasElevatedPrivileges())
	assert.True(t, domain.RoleDirector.HasElevatedPrivileges())
	assert.True(t, domain.RoleAdministrator.HasElevatedPrivileges())
}

func TestParseRole(t *testing.T) {
	r, err := domain.ParseRole(3)
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleDirector, r)

	for _, v := range []int{0, 5, -1, 99} {
		_, err := domain.ParseRole(v)
		assert.ErrorIs(t, err, domain.ErrUnknownRole)
	}

	r, err = domain.ParseRoleName("manager")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleManager, r)

	r, err = domain.ParseRoleName("4")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdministrator, r)

	_, err = domain.ParseRoleName("superadmin")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

func TestEmployeeRole_JSON(t *testing.T) {
	type payload struct {
		Role domain.EmployeeRole `json:"role"`
	}

	t.Run("encodes the name", func(t *testing.T) {
		b, err := json.Marshal(payload{Role: domain.RoleDirector})
		assert.NoError(t, err)
		assert.JSONEq(t, `{"role":"Director"}`, string(b))
	})

	t.Run("decodes name or number", func(t *testing.T) {
		var p payload
		assert.NoError(t, json.Unmarshal([]byte(`{"role":"employee"}`), &p))
		assert.Equal(t, domain.RoleEmployee, p.Role)

		assert.NoError(t, json.Unmarshal([]byte(`{"role":2}`), &p))
		assert.Equal(t, domain.RoleManager, p.Role)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"role":7}`), &p))
		assert.Error(t, json.Unmarshal([]byte(`{"role":"intern"}`), &p))
		assert.Error(t, json.Unmarshal([]byte(`{"role":true}`), &p))
	})
}
