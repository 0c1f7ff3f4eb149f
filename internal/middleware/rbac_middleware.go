package middleware

import (
	"go-employee-api/internal/domain"
	"go-employee-api/internal/shared/contextutil"
	"go-employee-api/internal/shared/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService adalah interface lokal.
// Apapun package yang punya method Enforce(domain.EnforceRequest) bisa masuk ke sini.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := contextutil.GetPrincipal(c.Request.Context())
		if !ok || !p.Authenticated {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     p.Role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			contextutil.GetLogger(c.Request.Context(), nil).Error("rbac enforce failed",
				zap.String("resource", resource),
				zap.String("action", action),
				zap.Error(err),
			)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action},
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
