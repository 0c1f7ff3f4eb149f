package main

import (
	"flag"

	"go-employee-api/internal/config"
	"go-employee-api/internal/migrations"
	"go-employee-api/internal/shared/connection"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	command := flag.String("command", "up", "migration command: up, down or status")
	flag.Parse()

	cfg := config.Load()

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, 5)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	defer sqlDB.Close()

	switch *command {
	case "up":
		err = migrations.Up(sqlDB)
	case "down":
		err = migrations.Down(sqlDB)
	case "status":
		err = migrations.Status(sqlDB)
	default:
		logger.Fatal("unknown migration command", zap.String("command", *command))
	}
	if err != nil {
		logger.Fatal("migration failed", zap.String("command", *command), zap.Error(err))
	}

	logger.Info("migration finished", zap.String("command", *command))
}
