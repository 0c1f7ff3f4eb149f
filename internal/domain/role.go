package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownRole = errors.New("unknown employee role")

// EmployeeRole is ordered: a higher value carries more authority.
type EmployeeRole int

const (
	RoleEmployee EmployeeRole = iota + 1
	RoleManager
	RoleDirector
	// Administrators cannot be created through the API.
	RoleAdministrator
)

var roleNames = map[EmployeeRole]string{
	RoleEmployee:      "Employee",
	RoleManager:       "Manager",
	RoleDirector:      "Director",
	RoleAdministrator: "Administrator",
}

// Roles returns every role in ascending order of authority.
func Roles() []EmployeeRole {
	return []EmployeeRole{RoleEmployee, RoleManager, RoleDirector, RoleAdministrator}
}

func ParseRole(v int) (EmployeeRole, error) {
	r := EmployeeRole(v)
	if !r.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownRole, v)
	}
	return r, nil
}

// ParseRoleName accepts a role name in any case, or its numeric value.
func ParseRoleName(s string) (EmployeeRole, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return ParseRole(n)
	}
	for r, name := range roleNames {
		if strings.EqualFold(name, s) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r EmployeeRole) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r EmployeeRole) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "EmployeeRole(" + strconv.Itoa(int(r)) + ")"
}

// CanManage reports whether r may create or manage an employee holding target.
func (r EmployeeRole) CanManage(target EmployeeRole) bool {
	if r == RoleAdministrator {
		return true
	}
	if target == RoleAdministrator {
		return false
	}
	return r > target
}

// ManagedRoles never returns nil; the lowest role manages nothing.
func (r EmployeeRole) ManagedRoles() []EmployeeRole {
	switch r {
	case RoleAdministrator:
		return []EmployeeRole{RoleEmployee, RoleManager, RoleDirector}
	case RoleDirector:
		return []EmployeeRole{RoleEmployee, RoleManager}
	case RoleManager:
		return []EmployeeRole{RoleEmployee}
	default:
		return []EmployeeRole{}
	}
}

func (r EmployeeRole) HasElevatedPrivileges() bool {
	return r >= RoleManager
}

func (r EmployeeRole) MarshalJSON() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(r))
	}
	return json.Marshal(r.String())
}

// UnmarshalJSON accepts either the role name or its numeric value.
func (r *EmployeeRole) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseRoleName(name)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrUnknownRole, string(data))
	}
	parsed, err := ParseRole(n)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
