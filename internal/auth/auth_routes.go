package auth

import (
	"go-employee-api/internal/auth/token"
	"go-employee-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, issuer token.Issuer) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(0.2, 5), handler.RefreshToken)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me",
			middleware.AuthMiddleware(issuer),
			middleware.RateLimitByEmployee(2, 5),
			handler.Me,
		)
	}
}
