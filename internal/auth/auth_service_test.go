package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-employee-api/internal/auth"
	autherrors "go-employee-api/internal/auth/errors"
	"go-employee-api/internal/auth/token"
	"go-employee-api/internal/domain"
	"go-employee-api/internal/employee"
	employeeerrors "go-employee-api/internal/employee/errors"
	"go-employee-api/internal/shared/apperror"
	"go-employee-api/internal/shared/contextutil"
	"go-employee-api/internal/shared/password"

	authMock "go-employee-api/internal/auth/mock"
	tokenMock "go-employee-api/internal/auth/token/mock"
	employeeMock "go-employee-api/internal/employee/mock"
	passwordMock "go-employee-api/internal/shared/password/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var expiresAt = time.Date(2026, 5, 10, 13, 0, 0, 0, time.UTC)

type serviceDeps struct {
	service   auth.Service
	employees *employeeMock.MockRepository
	issuer    *tokenMock.MockIssuer
	hasher    *passwordMock.MockHasher
	sessions  *authMock.MockSessionStore
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	deps := &serviceDeps{
		employees: employeeMock.NewMockRepository(ctrl),
		issuer:    tokenMock.NewMockIssuer(ctrl),
		hasher:    passwordMock.NewMockHasher(ctrl),
		sessions:  authMock.NewMockSessionStore(ctrl),
	}
	deps.service = auth.NewService(deps.employees, deps.issuer, deps.hasher, deps.sessions, zap.NewNop())
	return deps
}

func registeredEmployee() *employee.Employee {
	return employee.New(employee.NewEmployeeParams{
		ID:          uuid.New(),
		FirstName:   "Ana",
		LastName:    "Souza",
		Email:       employee.NewEmail("ana@example.com"),
		Password:    "$2a$10$storedhash",
		Document:    employee.NewDocument("123.456.789-09"),
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Role:        domain.RoleManager,
	})
}

func (d *serviceDeps) expectIssue(e *employee.Employee) {
	d.issuer.EXPECT().GetExpiration().Return(expiresAt)
	d.issuer.EXPECT().
		GenerateAccessToken(token.Subject{
			EmployeeID: e.ID,
			Email:      "ana@example.com",
			Name:       "Ana Souza",
			Role:       domain.RoleManager,
		}).
		Return("access-token", nil)
	d.issuer.EXPECT().GenerateRefreshToken().Return("refresh-token", nil)
	d.sessions.EXPECT().Save(gomock.Any(), "refresh-token", e.ID).Return(nil)
}

func TestAuthService_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := registeredEmployee()

		deps.employees.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(e, nil)
		deps.hasher.EXPECT().Compare("$2a$10$storedhash", "secret123").Return(nil)
		deps.expectIssue(e)

		resp, err := deps.service.Login(context.Background(), "  ANA@example.com ", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "access-token", resp.AccessToken)
		assert.Equal(t, "refresh-token", resp.RefreshToken)
		assert.Equal(t, "2026-05-10T13:00:00Z", resp.ExpiresAt)
		assert.Equal(t, "Manager", resp.Employee.Role)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := registeredEmployee()

		deps.employees.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, employeeerrors.ErrEmployeeNotFound)
		_, errUnknown := deps.service.Login(context.Background(), "ghost@example.com", "secret123")

		deps.employees.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(e, nil)
		deps.hasher.EXPECT().Compare(gomock.Any(), "wrong").Return(password.ErrMismatch)
		_, errMismatch := deps.service.Login(context.Background(), "ana@example.com", "wrong")

		assert.ErrorIs(t, errUnknown, autherrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errMismatch, autherrors.ErrInvalidCredentials)
		assert.Equal(t, apperror.ToHTTP(errUnknown), apperror.ToHTTP(errMismatch))
		assert.Equal(t, 401, apperror.ToHTTP(errUnknown).Status)
		assert.Equal(t, "Invalid email or password", apperror.ToHTTP(errUnknown).Message)
	})

	t.Run("lookup failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		boom := errors.New("db down")

		deps.employees.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := deps.service.Login(context.Background(), "ana@example.com", "secret123")
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, autherrors.MsgLoginFailed, apperror.ToHTTP(err).Message)
	})

	t.Run("token failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := registeredEmployee()

		deps.employees.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(e, nil)
		deps.hasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Return(nil)
		deps.issuer.EXPECT().GetExpiration().Return(expiresAt)
		deps.issuer.EXPECT().GenerateAccessToken(gomock.Any()).Return("", errors.New("signing failed"))

		_, err := deps.service.Login(context.Background(), "ana@example.com", "secret123")
		assert.Equal(t, 500, apperror.ToHTTP(err).Status)
		assert.Equal(t, autherrors.MsgLoginFailed, apperror.ToHTTP(err).Message)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("rotates the pair", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := registeredEmployee()

		deps.sessions.EXPECT().Consume(gomock.Any(), "old-refresh").Return(e.ID, nil)
		deps.employees.EXPECT().GetByID(gomock.Any(), e.ID).Return(e, nil)
		deps.expectIssue(e)

		resp, err := deps.service.RefreshToken(context.Background(), "old-refresh")
		assert.NoError(t, err)
		assert.Equal(t, "refresh-token", resp.RefreshToken)
	})

	t.Run("missing token", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.RefreshToken(context.Background(), " ")
		assert.ErrorIs(t, err, autherrors.ErrMissingRefreshToken)
	})

	t.Run("unknown or reused token", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sessions.EXPECT().Consume(gomock.Any(), "used").Return(uuid.Nil, auth.ErrSessionNotFound)

		_, err := deps.service.RefreshToken(context.Background(), "used")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("owner no longer exists", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		deps.sessions.EXPECT().Consume(gomock.Any(), "orphan").Return(id, nil)
		deps.employees.EXPECT().GetByID(gomock.Any(), id).Return(nil, employeeerrors.ErrEmployeeNotFound)

		_, err := deps.service.RefreshToken(context.Background(), "orphan")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("store failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sessions.EXPECT().Consume(gomock.Any(), "x").Return(uuid.Nil, errors.New("redis timeout"))

		_, err := deps.service.RefreshToken(context.Background(), "x")
		assert.Equal(t, autherrors.MsgRefreshFailed, apperror.ToHTTP(err).Message)
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("revokes the session", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sessions.EXPECT().Revoke(gomock.Any(), "refresh-token").Return(nil)
		assert.NoError(t, deps.service.Logout(context.Background(), "refresh-token"))
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		deps := setupServiceTest(t)
		assert.NoError(t, deps.service.Logout(context.Background(), ""))
	})

	t.Run("store failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sessions.EXPECT().Revoke(gomock.Any(), gomock.Any()).Return(errors.New("redis timeout"))

		err := deps.service.Logout(context.Background(), "refresh-token")
		assert.Equal(t, autherrors.MsgLogoutFailed, apperror.ToHTTP(err).Message)
	})
}

func TestAuthService_Me(t *testing.T) {
	t.Run("returns the profile of the principal", func(t *testing.T) {
		deps := setupServiceTest(t)
		e := registeredEmployee()
		ctx := contextutil.WithPrincipal(context.Background(), domain.Principal{
			EmployeeID: e.ID, Role: domain.RoleManager, Authenticated: true,
		})

		deps.employees.EXPECT().GetByID(ctx, e.ID).Return(e, nil)

		profile, err := deps.service.Me(ctx)
		assert.NoError(t, err)
		assert.Equal(t, e.ID.String(), profile.ID)
		assert.Equal(t, "Ana", profile.FirstName)
	})

	t.Run("no principal", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Me(context.Background())
		assert.ErrorIs(t, err, autherrors.ErrTokenNotFound)
	})

	t.Run("lookup failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		ctx := contextutil.WithPrincipal(context.Background(), domain.Principal{EmployeeID: id, Authenticated: true})
		deps.employees.EXPECT().GetByID(ctx, id).Return(nil, errors.New("timeout"))

		_, err := deps.service.Me(ctx)
		assert.Equal(t, autherrors.MsgMeFailed, apperror.ToHTTP(err).Message)
	})
}
