package ginserver

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	gin "github.com/gin-gonic/gin"

	domainauth "holidaze/internal/domain/auth"
)

// SessionMiddleware resolves the bearer token to a stored session and puts it
// on the request context. Unknown or expired tokens leave the request
// anonymous; handlers that need a session reject it later.
type SessionMiddleware struct {
	Sessions domainauth.SessionStore
	Logger   *slog.Logger
	Now      func() time.Time
}

func (m SessionMiddleware) Handle(c *gin.Context) {
	token := extractBearerToken(c.GetHeader("Authorization"))
	if token == "" || m.Sessions == nil {
		c.Next()
		return
	}
	ctx := c.Request.Context()
	session, err := m.Sessions.Get(ctx, domainauth.Token(token))
	if err != nil {
		if !errors.Is(err, domainauth.ErrSessionNotFound) && m.Logger != nil {
			m.Logger.WarnContext(ctx, "session lookup failed", "error", err)
		}
		c.Next()
		return
	}
	now := time.Now()
	if m.Now != nil {
		now = m.Now()
	}
	if session.Expired(now) {
		c.Next()
		return
	}
	c.Request = c.Request.WithContext(domainauth.ContextWithSession(ctx, session))
	c.Next()
}

func extractBearerToken(header string) string {
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}
