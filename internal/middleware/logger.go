package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, status code,
// request latency, and request ID (if available).
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	request_id=123e4567-e89b-12d3-a456-426614174000 method=GET path=/api/stock_data status=200 latency_ms=2315
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		ev := logger.L().Info()
		if status >= http.StatusInternalServerError {
			ev = logger.L().Warn()
		}
		ev.
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// client tracks the requests admitted for one IP in its current fixed window.
type client struct {
	windowStart time.Time
	count       int
}

// In-memory store for inbound rate limiting. Per instance only.
var (
	clients         = make(map[string]*client)
	window          = time.Minute
	limit           = 60
	rateLimiterLock sync.Mutex
)

// maxTrackedClients bounds the store; above it, clients whose window has ended are dropped.
const maxTrackedClients = 10000

// RateLimiter is a simple in-memory middleware that limits the number of requests per client IP.
//
// Behavior:
//   - Allows up to `limit` requests per fixed `window` (default: 60 requests per 1 minute).
//   - The window starts at the first request of a client and resets once it has elapsed,
//     whatever the client did in between.
//   - Rejected requests are not counted.
//   - Identifies clients by their IP address.
//   - If limit exceeded, returns HTTP 429 Too Many Requests.
//
// Each /api/stock_data call fans out to one upstream request per symbol, so
// this also bounds the upstream load a single caller can generate.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !admit(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(dto.MsgRateLimitExceeded, nil))
			return
		}
		c.Next()
	}
}

// admit records a request from ip at now and reports whether it is within the limit.
func admit(ip string, now time.Time) bool {
	rateLimiterLock.Lock()
	defer rateLimiterLock.Unlock()

	cl, ok := clients[ip]
	if !ok || now.Sub(cl.windowStart) > window {
		if !ok && len(clients) >= maxTrackedClients {
			for k, v := range clients {
				if now.Sub(v.windowStart) > window {
					delete(clients, k)
				}
			}
		}
		cl = &client{windowStart: now}
		clients[ip] = cl
	}
	if cl.count >= limit {
		return false
	}
	cl.count++
	return true
}
