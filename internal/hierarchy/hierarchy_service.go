// Package hierarchy answers role questions about the acting principal.
package hierarchy

import (
	"go-employee-api/internal/domain"

	"github.com/google/uuid"
)

type Service interface {
	IsAuthenticated(p domain.Principal) bool
	RoleOf(p domain.Principal) domain.EmployeeRole
	EmployeeIDOf(p domain.Principal) uuid.UUID
	CanCreateEmployee(p domain.Principal, target domain.EmployeeRole) bool
	CanUpdateEmployee(p domain.Principal, targetID uuid.UUID, targetRole domain.EmployeeRole) bool
}

type service struct{}

func NewService() Service {
	return &service{}
}

func (s *service) IsAuthenticated(p domain.Principal) bool {
	return p.Authenticated && p.EmployeeID != uuid.Nil
}

// RoleOf returns the lowest role for a principal without a valid one.
func (s *service) RoleOf(p domain.Principal) domain.EmployeeRole {
	if !p.Role.Valid() {
		return domain.RoleEmployee
	}
	return p.Role
}

func (s *service) EmployeeIDOf(p domain.Principal) uuid.UUID {
	if !s.IsAuthenticated(p) {
		return uuid.Nil
	}
	return p.EmployeeID
}

// CanCreateEmployee never admits an Administrator target, whoever acts.
func (s *service) CanCreateEmployee(p domain.Principal, target domain.EmployeeRole) bool {
	if !s.IsAuthenticated(p) || !target.Valid() {
		return false
	}
	if target == domain.RoleAdministrator {
		return false
	}
	return s.RoleOf(p).CanManage(target)
}

// CanUpdateEmployee allows updating one's own record, or any record whose
// role the principal could have created. targetRole is the stored role of
// the record being updated.
func (s *service) CanUpdateEmployee(p domain.Principal, targetID uuid.UUID, targetRole domain.EmployeeRole) bool {
	if !s.IsAuthenticated(p) {
		return false
	}
	if p.EmployeeID == targetID {
		return true
	}
	return s.RoleOf(p).CanManage(targetRole)
}
