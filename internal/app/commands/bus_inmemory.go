package commands

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
)

type route func(ctx context.Context, cmd Command) (any, error)

// InMemoryBus calls the handler registered for a command's key in the
// caller's goroutine. Registration happens once at startup.
type InMemoryBus struct {
	mu     sync.RWMutex
	routes map[string]route
}

func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{routes: map[string]route{}}
}

func (b *InMemoryBus) register(key string, r route) {
	if key == "" {
		panic("commands: handler registered without a key")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.routes[key]; dup {
		panic("commands: second handler for " + key)
	}
	b.routes[key] = r
}

func (b *InMemoryBus) Dispatch(ctx context.Context, cmd Command) (any, error) {
	b.mu.RLock()
	r, ok := b.routes[cmd.Key()]
	b.mu.RUnlock()
	if !ok {
		return nil, errors.Wrap(ErrHandlerNotFound, cmd.Key())
	}
	return r(ctx, cmd)
}

// Keys lists the registered command keys in order.
func (b *InMemoryBus) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.routes))
	for k := range b.routes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RegisterHandler routes commands of type C to handler. It panics when C is
// already handled.
func RegisterHandler[C Command, R any](bus *InMemoryBus, handler Handler[C, R]) {
	var zero C
	bus.register(zero.Key(), func(ctx context.Context, cmd Command) (any, error) {
		typed, ok := cmd.(C)
		if !ok {
			return nil, errors.AssertionFailedf("commands: %T routed to handler for %T", cmd, zero)
		}
		return handler.Handle(ctx, typed)
	})
}
