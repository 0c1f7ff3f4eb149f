package token_test

import (
	"encoding/base64"
	"testing"
	"time"

	autherrors "go-employee-api/internal/auth/errors"
	"go-employee-api/internal/auth/token"
	"go-employee-api/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newIssuer(now time.Time) token.Issuer {
	return token.NewJWTIssuer(token.Config{
		Secret:     "test-secret",
		Issuer:     "employee-api",
		Audience:   "employee-api-clients",
		Expiration: 30 * time.Minute,
		Now:        func() time.Time { return now },
	})
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	now := time.Now()
	issuer := newIssuer(now)
	sub := token.Subject{
		EmployeeID: uuid.New(),
		Email:      "ana@example.com",
		Name:       "Ana Souza",
		Role:       domain.RoleDirector,
	}

	raw, err := issuer.GenerateAccessToken(sub)
	assert.NoError(t, err)

	p, err := issuer.ParseAccessToken(raw)
	assert.NoError(t, err)
	assert.True(t, p.Authenticated)
	assert.Equal(t, sub.EmployeeID, p.EmployeeID)
	assert.Equal(t, domain.RoleDirector, p.Role)
	assert.Equal(t, "Ana Souza", p.Name)
	assert.Equal(t, "ana@example.com", p.Email)

	assert.WithinDuration(t, now.Add(30*time.Minute), issuer.GetExpiration(), time.Second)
}

func TestJWTIssuer_ParseFailures(t *testing.T) {
	now := time.Now()
	issuer := newIssuer(now)
	sub := token.Subject{EmployeeID: uuid.New(), Role: domain.RoleEmployee}

	t.Run("expired", func(t *testing.T) {
		raw, _ := newIssuer(now.Add(-2 * time.Hour)).GenerateAccessToken(sub)
		_, err := issuer.ParseAccessToken(raw)
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := token.NewJWTIssuer(token.Config{
			Secret: "other", Issuer: "employee-api", Audience: "employee-api-clients",
		})
		raw, _ := other.GenerateAccessToken(sub)
		_, err := issuer.ParseAccessToken(raw)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		other := token.NewJWTIssuer(token.Config{
			Secret: "test-secret", Issuer: "employee-api", Audience: "someone-else",
		})
		raw, _ := other.GenerateAccessToken(sub)
		_, err := issuer.ParseAccessToken(raw)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.ParseAccessToken("not.a.jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		claims := token.Claims{
			EmployeeID: uuid.NewString(),
			Role:       9,
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "employee-api",
				Audience:  jwt.ClaimStrings{"employee-api-clients"},
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			},
		}
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		_, err = issuer.ParseAccessToken(raw)
		assert.ErrorIs(t, err, autherrors.ErrUnknownRole)
	})
}

func TestJWTIssuer_GenerateRefreshToken(t *testing.T) {
	issuer := newIssuer(time.Now())

	a, err := issuer.GenerateRefreshToken()
	assert.NoError(t, err)
	b, _ := issuer.GenerateRefreshToken()
	assert.NotEqual(t, a, b)

	raw, err := base64.StdEncoding.DecodeString(a)
	assert.NoError(t, err)
	assert.Len(t, raw, 64)
}
