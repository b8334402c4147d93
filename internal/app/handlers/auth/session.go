package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"holidaze/internal/app/commands"
	"holidaze/internal/app/middleware"
	"holidaze/internal/app/policies"
	domainauth "holidaze/internal/domain/auth"
)

var ErrCredentialsRequired = errors.New("auth: email and password are required")

type LoginCommand struct {
	Email    string
	Password string
}

func (LoginCommand) Key() string { return "auth.login" }

type LoginResult struct {
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginHandler exchanges credentials with the remote API and becomes the
// single place where a session is created and stored.
type LoginHandler struct {
	API      policies.AuthAPI
	Sessions domainauth.SessionStore
	TTL      time.Duration
	Now      func() time.Time
}

func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.TrimSpace(cmd.Email)
	if email == "" || cmd.Password == "" {
		return nil, ErrCredentialsRequired
	}
	res, err := h.API.Login(ctx, email, cmd.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}
	ttl := h.TTL
	if !res.ExpiresAt.IsZero() {
		if left := res.ExpiresAt.Sub(now); left < ttl {
			ttl = left
		}
	}
	session, err := domainauth.NewSession(domainauth.CreateSessionParams{
		Token: domainauth.Token(res.AccessToken),
		Name:  res.Name,
		Email: res.Email,
		TTL:   ttl,
		Now:   now,
	})
	if err != nil {
		return nil, err
	}
	if err := h.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return &LoginResult{
		Token:     string(session.Token),
		Name:      session.Name,
		Email:     session.Email,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

type LogoutCommand struct{}

func (LogoutCommand) Key() string           { return "auth.logout" }
func (LogoutCommand) RequiresSession() bool { return true }

type LogoutHandler struct {
	Sessions domainauth.SessionStore
}

func (h *LogoutHandler) Handle(ctx context.Context, _ LogoutCommand) (*struct{}, error) {
	session, ok := domainauth.SessionFromContext(ctx)
	if !ok {
		return nil, middleware.ErrUnauthenticated
	}
	if err := h.Sessions.Delete(ctx, session.Token); err != nil && !errors.Is(err, domainauth.ErrSessionNotFound) {
		return nil, err
	}
	return &struct{}{}, nil
}

var (
	_ commands.Handler[LoginCommand, *LoginResult] = (*LoginHandler)(nil)
	_ commands.Handler[LogoutCommand, *struct{}]   = (*LogoutHandler)(nil)
)
