package middleware

import (
	"context"
	"errors"
	"sync"

	"holidaze/internal/app/commands"
	"holidaze/internal/domain/auth"
)

var ErrBusy = errors.New("middleware: an identical request is already in progress")

// ExclusiveCommand names the resource a command mutates. While one command
// with a given key is running for a session, a second one with the same key
// fails fast instead of queueing, so rapid repeated submits cannot double-book.
type ExclusiveCommand interface {
	commands.Command
	ExclusiveKey() string
}

// InFlight tracks running exclusive commands.
type InFlight struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func NewInFlight() *InFlight {
	return &InFlight{running: make(map[string]struct{})}
}

func (f *InFlight) acquire(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.running[key]; busy {
		return false
	}
	f.running[key] = struct{}{}
	return true
}

func (f *InFlight) release(key string) {
	f.mu.Lock()
	delete(f.running, key)
	f.mu.Unlock()
}

func SingleFlight(tracker *InFlight) CommandMiddleware {
	if tracker == nil {
		panic("middleware: in-flight tracker required")
	}
	return func(next commands.Bus) commands.Bus {
		return commandFunc(func(ctx context.Context, cmd commands.Command) (any, error) {
			ex, ok := cmd.(ExclusiveCommand)
			if !ok || ex.ExclusiveKey() == "" {
				return next.Dispatch(ctx, cmd)
			}
			key := cmd.Key() + ":" + ex.ExclusiveKey()
			if s, ok := auth.SessionFromContext(ctx); ok {
				key = string(s.Token) + ":" + key
			}
			if !tracker.acquire(key) {
				return nil, ErrBusy
			}
			defer tracker.release(key)
			return next.Dispatch(ctx, cmd)
		})
	}
}
