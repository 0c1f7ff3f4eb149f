package middleware

import (
	"errors"
	autherrors "go-employee-api/internal/auth/errors"
	"go-employee-api/internal/auth/token"
	"go-employee-api/internal/domain"
	"go-employee-api/internal/shared/apperror"
	"go-employee-api/internal/shared/contextutil"
	"go-employee-api/internal/shared/response"
	"strings"

	"github.com/gin-gonic/gin"
)

func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
	c.Abort()
}

// AuthMiddleware reads the access token from the Authorization header, or
// the access_token cookie for web clients, and attaches the principal.
func AuthMiddleware(issuer token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		tokenString = strings.TrimSpace(tokenString)

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, autherrors.ErrTokenNotFound)
			return
		}

		principal, err := issuer.ParseAccessToken(tokenString)
		if err != nil {
			var appErr *apperror.AppError
			if !errors.As(err, &appErr) {
				err = autherrors.ErrInvalidToken
			}
			abortWith(c, err)
			return
		}

		ctx := contextutil.WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole admits principals holding at least one of roles. It must run
// after AuthMiddleware.
func RequireRole(roles ...domain.EmployeeRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := contextutil.GetPrincipal(c.Request.Context())
		if !ok || !p.Authenticated {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		for _, r := range roles {
			if p.Role == r {
				c.Next()
				return
			}
		}

		abortWith(c, autherrors.ErrForbidden)
	}
}
