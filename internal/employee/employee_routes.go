package employee

import (
	"go-employee-api/internal/auth/token"
	"go-employee-api/internal/domain"
	"go-employee-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	issuer token.Issuer,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(issuer))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByEmployee(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			handler.List,
		)

		employees.GET("/:id",
			middleware.RateLimitByEmployee(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionRead),
			handler.GetByID,
		)

		employees.POST("",
			middleware.RateLimitByEmployee(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionCreate),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByEmployee(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceEmployee, domain.ActionUpdate),
			handler.Update,
		)
	}
}
