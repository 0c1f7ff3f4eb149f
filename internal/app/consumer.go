package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-employee-api/internal/bootstrap"
	"go-employee-api/internal/config"
	"go-employee-api/internal/events"
	"go-employee-api/internal/messaging/kafka/consumer"
	"go-employee-api/internal/shared/connection"

	"go.uber.org/zap"
)

// RunConsumer audits employee lifecycle events until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := connection.NewKafkaReader(cfg.Kafka.Broker, cfg.Kafka.GroupID, events.EmployeeLifecycleTopic)
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		consumer.ConsumeEmployeeLifecycle(ctx, reader, bootstrap.NewStdoutAuditLogger(), logger)
		close(done)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
