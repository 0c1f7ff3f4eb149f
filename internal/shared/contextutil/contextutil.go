package contextutil

import (
	"context"

	"go-employee-api/internal/domain"

	"go.uber.org/zap"
)

// contextKey adalah tipe privat agar tidak terjadi tabrakan key dengan library lain
type contextKey string

const (
	requestIDKey contextKey = "request_id"
	principalKey contextKey = "principal"
	loggerKey    contextKey = "logger"
)

// --- Request ID Helpers ---

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// --- Principal Helpers ---

// WithPrincipal stores the acting user resolved from the access token.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// GetPrincipal reports false when the request carries no principal.
func GetPrincipal(ctx context.Context) (domain.Principal, bool) {
	if ctx == nil {
		return domain.Principal{}, false
	}
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}

// GetEmployeeID returns the principal's employee id, or "" for anonymous requests.
func GetEmployeeID(ctx context.Context) string {
	if p, ok := GetPrincipal(ctx); ok && p.Authenticated {
		return p.EmployeeID.String()
	}
	return ""
}

// --- Logger Helpers ---

// WithLogger memasukkan zap logger (yang biasanya sudah di-decorate) ke context
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger never returns nil: it falls back to defaultLogger, then to a no-op logger.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}

// Metadata menampung info tracing dasar
type Metadata struct {
	RequestID  string
	EmployeeID string
}

func ExtractMetadata(ctx context.Context) Metadata {
	return Metadata{
		RequestID:  GetRequestID(ctx),
		EmployeeID: GetEmployeeID(ctx),
	}
}
