package app

import (
	"go-employee-api/internal/auth"
	"go-employee-api/internal/auth/token"
	"go-employee-api/internal/config"
	"go-employee-api/internal/employee"
	"go-employee-api/internal/hierarchy"
	"go-employee-api/internal/middleware"
	"go-employee-api/internal/rbac"
	"go-employee-api/internal/rbac/infra"
	"go-employee-api/internal/rbac/rbac_http"
	"go-employee-api/internal/shared/password"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	writer employee.MessageWriter,
) error {
	logger := zap.L()

	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	rbacRepo := rbac.NewHierarchyRepository()
	sessionStore := auth.NewRedisSessionStore(rdb, cfg.RefreshTokenTTL)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Shared ---
	issuer := token.NewJWTIssuer(token.Config{
		Secret:     cfg.JWT.Secret,
		Issuer:     cfg.JWT.Issuer,
		Audience:   cfg.JWT.Audience,
		Expiration: cfg.JWT.Expiration,
	})
	hasher := password.NewBcryptHasher(cfg.BcryptCost)

	publisher := employee.NewNoopEventPublisher()
	if writer != nil {
		publisher = employee.NewKafkaEventPublisher(writer)
	}

	// --- Services ---
	hierarchyService := hierarchy.NewService()
	employeeService := employee.NewService(employeeRepo, hierarchyService, hasher, publisher, logger)
	authService := auth.NewService(employeeRepo, issuer, hasher, sessionStore, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:     cfg.IsProduction(),
		RefreshTTL: cfg.RefreshTokenTTL,
	}, logger)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, issuer)
		employee.RegisterRoutes(api, employeeHandler, issuer, rbacService, logger)
		rbac_http.RegisterRoutes(api, rbacHandler, issuer)
	}

	return nil
}
