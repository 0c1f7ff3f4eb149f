package main

import (
	"go-employee-api/internal/app"
	"go-employee-api/internal/config"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
