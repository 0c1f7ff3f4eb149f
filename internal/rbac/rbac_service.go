package rbac

import (
	"sync"

	"go-employee-api/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(req domain.EnforceRequest) (bool, error)
	PermissionsFor(role domain.EmployeeRole) ([][]string, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	inheritance, err := s.repo.GetRoleInheritance()
	if err != nil {
		return err
	}
	for _, row := range inheritance {
		if _, err := s.enforcer.AddGroupingPolicy(row.Role, row.Inherits); err != nil {
			return err
		}
	}

	perms, err := s.repo.GetRolePermissions()
	if err != nil {
		return err
	}
	for _, p := range perms {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("role_inheritance", len(inheritance)),
		zap.Int("role_permissions", len(perms)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	if !req.Role.Valid() {
		return false, domain.ErrUnknownRole
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	allowed, err := s.enforcer.Enforce(req.Role.String(), req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.Stringer("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.Stringer("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// PermissionsFor lists [role, resource, action] rules including inherited ones.
func (s *service) PermissionsFor(role domain.EmployeeRole) ([][]string, error) {
	if !role.Valid() {
		return nil, domain.ErrUnknownRole
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.enforcer.GetImplicitPermissionsForUser(role.String())
}
