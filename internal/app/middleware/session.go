package middleware

import (
	"context"
	"errors"

	"holidaze/internal/app/commands"
	"holidaze/internal/app/queries"
	"holidaze/internal/domain/auth"
)

var ErrUnauthenticated = errors.New("middleware: session required")

// SessionRequired marks messages that act on behalf of a signed-in user.
type SessionRequired interface {
	RequiresSession() bool
}

func needsSession(msg any) bool {
	sr, ok := msg.(SessionRequired)
	return ok && sr.RequiresSession()
}

func RequireSession() CommandMiddleware {
	return func(next commands.Bus) commands.Bus {
		return commandFunc(func(ctx context.Context, cmd commands.Command) (any, error) {
			if needsSession(cmd) {
				if _, ok := auth.SessionFromContext(ctx); !ok {
					return nil, ErrUnauthenticated
				}
			}
			return next.Dispatch(ctx, cmd)
		})
	}
}

func QueryRequireSession() QueryMiddleware {
	return func(next queries.Bus) queries.Bus {
		return queryFunc(func(ctx context.Context, q queries.Query) (any, error) {
			if needsSession(q) {
				if _, ok := auth.SessionFromContext(ctx); !ok {
					return nil, ErrUnauthenticated
				}
			}
			return next.Ask(ctx, q)
		})
	}
}
