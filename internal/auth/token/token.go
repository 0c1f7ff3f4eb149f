package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	autherrors "go-employee-api/internal/auth/errors"
	"go-employee-api/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const refreshTokenBytes = 64

// Subject is what an access token is issued for.
type Subject struct {
	EmployeeID uuid.UUID
	Email      string
	Name       string
	Role       domain.EmployeeRole
}

//go:generate mockgen -source=token.go -destination=mock/token_mock.go -package=mock
type Issuer interface {
	GenerateAccessToken(sub Subject) (string, error)
	GenerateRefreshToken() (string, error)
	// GetExpiration is the expiry an access token issued now would carry.
	GetExpiration() time.Time
	ParseAccessToken(raw string) (domain.Principal, error)
}

type Config struct {
	Secret     string
	Issuer     string
	Audience   string
	Expiration time.Duration
	// Now is used for tests; defaults to time.Now.
	Now func() time.Time
}

type Claims struct {
	EmployeeID string `json:"employee_id"`
	Role       int    `json:"employee_role"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	jwt.RegisteredClaims
}

type jwtIssuer struct {
	secret     []byte
	issuer     string
	audience   string
	expiration time.Duration
	now        func() time.Time
}

func NewJWTIssuer(cfg Config) Issuer {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	exp := cfg.Expiration
	if exp <= 0 {
		exp = 60 * time.Minute
	}
	return &jwtIssuer{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		expiration: exp,
		now:        now,
	}
}

func (i *jwtIssuer) GenerateAccessToken(sub Subject) (string, error) {
	now := i.now()
	claims := Claims{
		EmployeeID: sub.EmployeeID.String(),
		Role:       int(sub.Role),
		Email:      sub.Email,
		Name:       sub.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub.EmployeeID.String(),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiration)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

func (i *jwtIssuer) GenerateRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}

func (i *jwtIssuer) GetExpiration() time.Time {
	return i.now().Add(i.expiration)
}

// ParseAccessToken verifies signature, issuer, audience and expiry. A role
// claim outside the known hierarchy fails authentication.
func (i *jwtIssuer) ParseAccessToken(raw string) (domain.Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Principal{}, autherrors.ErrTokenExpired
		}
		return domain.Principal{}, autherrors.ErrInvalidToken
	}

	employeeID, err := uuid.Parse(claims.EmployeeID)
	if err != nil {
		return domain.Principal{}, autherrors.ErrInvalidToken
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Principal{}, autherrors.ErrUnknownRole
	}

	return domain.Principal{
		EmployeeID:    employeeID,
		Email:         claims.Email,
		Name:          claims.Name,
		Role:          role,
		Authenticated: true,
	}, nil
}
