package queries

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
)

type route func(ctx context.Context, q Query) (any, error)

type InMemoryBus struct {
	mu     sync.RWMutex
	routes map[string]route
}

func NewInMemoryBus() *InMemoryBus {
	return &InMemoryBus{routes: map[string]route{}}
}

func (b *InMemoryBus) register(key string, r route) {
	if key == "" {
		panic("queries: handler registered without a key")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, dup := b.routes[key]; dup {
		panic("queries: second handler for " + key)
	}
	b.routes[key] = r
}

func (b *InMemoryBus) Ask(ctx context.Context, q Query) (any, error) {
	b.mu.RLock()
	r, ok := b.routes[q.Key()]
	b.mu.RUnlock()
	if !ok {
		return nil, errors.Wrap(ErrHandlerNotFound, q.Key())
	}
	return r(ctx, q)
}

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

func RegisterHandler[Q Query, R any](bus *InMemoryBus, handler Handler[Q, R]) {
	var zero Q
	bus.register(zero.Key(), func(ctx context.Context, q Query) (any, error) {
		typed, ok := q.(Q)
		if !ok {
			return nil, errors.AssertionFailedf("queries: %T routed to handler for %T", q, zero)
		}
		return handler.Handle(ctx, typed)
	})
}
