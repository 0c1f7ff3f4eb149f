package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-employee-api/internal/auth/errors"
	"go-employee-api/internal/auth/token"
	"go-employee-api/internal/employee"
	employeeerrors "go-employee-api/internal/employee/errors"
	"go-employee-api/internal/shared/apperror"
	"go-employee-api/internal/shared/contextutil"
	"go-employee-api/internal/shared/password"

	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Me(ctx context.Context) (EmployeeProfile, error)
}

type service struct {
	employees employee.Repository
	issuer    token.Issuer
	hasher    password.Hasher
	sessions  SessionStore
	logger    *zap.Logger
}

func NewService(
	employees employee.Repository,
	issuer token.Issuer,
	hasher password.Hasher,
	sessions SessionStore,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		employees: employees,
		issuer:    issuer,
		hasher:    hasher,
		sessions:  sessions,
		logger:    l,
	}
}

func (s *service) Login(ctx context.Context, email, plain string) (LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	s.logger.Debug("login requested", zap.String("email", email))

	empl, err := s.employees.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			s.logger.Warn("login unknown email", zap.String("email", email))
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.String("email", email), zap.Error(err))
		return LoginResponse{}, apperror.Unexpected(err, autherrors.MsgLoginFailed)
	}

	if err := s.hasher.Compare(empl.Password, plain); err != nil {
		if !errors.Is(err, password.ErrMismatch) {
			s.logger.Error("login stored hash unusable",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
		}
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	resp, err := s.issue(ctx, empl)
	if err != nil {
		s.logger.Error("login issue tokens failed", zap.String("employee_id", empl.ID.String()), zap.Error(err))
		return LoginResponse{}, apperror.Unexpected(err, autherrors.MsgLoginFailed)
	}

	s.logger.Info("login success", zap.String("employee_id", empl.ID.String()))
	return resp, nil
}

// RefreshToken exchanges a refresh token for a new pair. The presented token
// is consumed even when the exchange later fails.
func (s *service) RefreshToken(ctx context.Context, refreshToken string) (LoginResponse, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return LoginResponse{}, autherrors.ErrMissingRefreshToken
	}

	employeeID, err := s.sessions.Consume(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidRefreshToken
		}
		s.logger.Error("refresh session lookup failed", zap.Error(err))
		return LoginResponse{}, apperror.Unexpected(err, autherrors.MsgRefreshFailed)
	}

	empl, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return LoginResponse{}, autherrors.ErrInvalidRefreshToken
		}
		s.logger.Error("refresh employee lookup failed", zap.String("employee_id", employeeID.String()), zap.Error(err))
		return LoginResponse{}, apperror.Unexpected(err, autherrors.MsgRefreshFailed)
	}

	resp, err := s.issue(ctx, empl)
	if err != nil {
		s.logger.Error("refresh issue tokens failed", zap.String("employee_id", empl.ID.String()), zap.Error(err))
		return LoginResponse{}, apperror.Unexpected(err, autherrors.MsgRefreshFailed)
	}
	return resp, nil
}

// Logout is idempotent: an unknown or empty token is not an error.
func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return nil
	}
	if err := s.sessions.Revoke(ctx, refreshToken); err != nil {
		s.logger.Error("logout revoke failed", zap.Error(err))
		return apperror.Unexpected(err, autherrors.MsgLogoutFailed)
	}
	return nil
}

func (s *service) Me(ctx context.Context) (EmployeeProfile, error) {
	p, ok := contextutil.GetPrincipal(ctx)
	if !ok || !p.Authenticated {
		return EmployeeProfile{}, autherrors.ErrTokenNotFound
	}

	empl, err := s.employees.GetByID(ctx, p.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return EmployeeProfile{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("me lookup failed", zap.String("employee_id", p.EmployeeID.String()), zap.Error(err))
		return EmployeeProfile{}, apperror.Unexpected(err, autherrors.MsgMeFailed)
	}
	return toProfile(empl), nil
}

func (s *service) issue(ctx context.Context, empl *employee.Employee) (LoginResponse, error) {
	expiresAt := s.issuer.GetExpiration()
	access, err := s.issuer.GenerateAccessToken(token.Subject{
		EmployeeID: empl.ID,
		Email:      empl.Email.Address,
		Name:       empl.FullName(),
		Role:       empl.Role,
	})
	if err != nil {
		return LoginResponse{}, err
	}

	refresh, err := s.issuer.GenerateRefreshToken()
	if err != nil {
		return LoginResponse{}, err
	}

	if err := s.sessions.Save(ctx, refresh, empl.ID); err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt.UTC().Format(time.RFC3339),
		Employee:     toProfile(empl),
	}, nil
}

func toProfile(empl *employee.Employee) EmployeeProfile {
	return EmployeeProfile{
		ID:        empl.ID.String(),
		FirstName: empl.FirstName,
		LastName:  empl.LastName,
		Email:     empl.Email.Address,
		Role:      empl.Role.String(),
	}
}
