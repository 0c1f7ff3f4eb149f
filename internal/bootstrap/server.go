package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// ShutdownHook releases a resource after the server stops accepting requests.
type ShutdownHook func(ctx context.Context) error

// StartHTTPServer menjalankan Gin server dengan graceful shutdown. Hooks run
// in order after the HTTP server has drained.
func StartHTTPServer(
	handler http.Handler,
	cfg ServerConfig,
	auditLogger AuditLogger,
	hooks ...ShutdownHook,
) error {
	log := zap.L().Named("bootstrap.server")
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server running", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var sig os.Signal
	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
		return nil
	case sig = <-quit:
	}

	log.Info("Shutdown signal received", zap.String("signal", sig.String()))

	// Audit log BEFORE shutdown
	auditLogger.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Server is shutting down",
		Meta: map[string]any{
			"signal": sig.String(),
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	} else {
		log.Info("Server exited gracefully")
	}

	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			log.Warn("shutdown hook failed", zap.Error(err))
		}
	}
	return nil
}
