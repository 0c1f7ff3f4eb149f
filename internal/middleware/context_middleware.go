package middleware

import (
	"go-employee-api/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger. Run it after
// AuthMiddleware so the employee id is known.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		rid := contextutil.GetRequestID(ctx)
		if rid == "" {
			rid = c.GetHeader("X-Request-ID")
		}
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)

		eid := contextutil.GetEmployeeID(ctx)

		// Logger ini yang akan digunakan di sepanjang request ini
		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("employee_id", eid),
		)

		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
