package middleware

import (
	"go-employee-api/internal/shared/contextutil"
	"go-employee-api/internal/shared/response"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// KeyedRateLimiter keeps one token bucket per key (client IP or employee id).
type KeyedRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit // jumlah request per detik
	b        int        // burst
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		r:        r,
		b:        b,
	}
}

func (l *KeyedRateLimiter) GetLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, exists := l.limiters[key]
	if !exists {
		limiter = rate.NewLimiter(l.r, l.b)
		l.limiters[key] = limiter
	}

	return limiter
}

func tooManyRequests(c *gin.Context, message string) {
	response.Error(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", message, nil)
	c.Abort()
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			tooManyRequests(c, "Too many requests from this IP")
			return
		}
		c.Next()
	}
}

// RateLimitByEmployee skips anonymous requests; it must run after AuthMiddleware.
func RateLimitByEmployee(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		employeeID := contextutil.GetEmployeeID(c.Request.Context())
		if employeeID == "" {
			c.Next()
			return
		}
		if !limiter.GetLimiter(employeeID).Allow() {
			tooManyRequests(c, "Too many requests from this employee")
			return
		}
		c.Next()
	}
}
