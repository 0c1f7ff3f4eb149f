package bootstrap

import (
	"context"
	"time"

	"go-employee-api/internal/shared/contextutil"

	"go.uber.org/zap"
)

type StdoutAuditLogger struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewStdoutAuditLogger(logger ...*zap.Logger) *StdoutAuditLogger {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &StdoutAuditLogger{logger: l, now: time.Now}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	md := contextutil.ExtractMetadata(ctx)
	l.logger.Info("audit event",
		zap.String("timestamp", l.now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.String("request_id", md.RequestID),
		zap.Any("meta", entry.Meta),
	)
}
