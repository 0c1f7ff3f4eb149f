package app

import (
	"context"

	"go-employee-api/internal/bootstrap"
	"go-employee-api/internal/config"
	"go-employee-api/internal/employee"
	"go-employee-api/internal/migrations"
	"go-employee-api/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure, migrates the schema and registers
// every module on router. The returned hooks release what was opened.
func BuildApp(router *gin.Engine, cfg *config.Config) ([]bootstrap.ShutdownHook, error) {
	logger := zap.L().Named("app")
	var hooks []bootstrap.ShutdownHook

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	hooks = append(hooks, func(context.Context) error { return sqlDB.Close() })
	logger.Info("database connection established")

	if err := migrations.Up(sqlDB); err != nil {
		return hooks, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, 5)
	if err != nil {
		return hooks, err
	}
	hooks = append(hooks, func(context.Context) error { return redisClient.Close() })
	logger.Info("redis connection established")

	var writer employee.MessageWriter
	if cfg.Kafka.Broker != "" {
		kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, 5)
		if err != nil {
			return hooks, err
		}
		writer = kafkaWriter
		hooks = append([]bootstrap.ShutdownHook{func(context.Context) error { return kafkaWriter.Close() }}, hooks...)
		logger.Info("kafka writer ready")
	} else {
		logger.Warn("KAFKA_BROKER not set, employee events are disabled")
	}

	// Register Modules & Routes
	if err := registerModules(router, cfg, gormDB, redisClient, writer); err != nil {
		return hooks, err
	}

	return hooks, nil
}
