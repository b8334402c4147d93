package obs

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the correlation id on requests, responses and
// outgoing events.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 128

// Middleware bundles the gin handlers that tag and log each request.
type Middleware struct {
	Logger *slog.Logger
	// Quiet lists route patterns that are served without an access line.
	Quiet []string
}

// RequestID adopts the caller's X-Request-ID when it looks sane and mints a
// UUID otherwise.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return false
		}
	}
	return true
}

// LoggerMiddleware writes one access line per request once the handler
// chain has finished.
func (m Middleware) LoggerMiddleware() gin.HandlerFunc {
	quiet := map[string]bool{"/livez": true, "/readyz": true}
	for _, p := range m.Quiet {
		quiet[p] = true
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m.Logger == nil || quiet[c.FullPath()] {
			return
		}
		status := c.Writer.Status()
		m.Logger.Log(c.Request.Context(), levelFor(status), "http request",
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Int("bytes", c.Writer.Size()),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", RequestIDFromContext(c.Request.Context())),
		)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

type ctxKey int

const requestIDKey ctxKey = iota

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// EventHeaders exposes the request id as message headers for outgoing events.
func EventHeaders(ctx context.Context) map[string]string {
	id := RequestIDFromContext(ctx)
	if id == "" {
		return nil
	}
	return map[string]string{"x-request-id": id}
}
