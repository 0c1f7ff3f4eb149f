package rbac_http

import (
	"go-employee-api/internal/auth/token"
	"go-employee-api/internal/domain"
	"go-employee-api/internal/middleware"
	"go-employee-api/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *rbac.Handler, issuer token.Issuer) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware(issuer))
	{
		group.GET("/permissions", handler.MyPermissions)
		group.POST("/enforce",
			middleware.RequireRole(domain.RoleAdministrator),
			handler.Enforce,
		)
	}
}
