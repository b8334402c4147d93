package policies

import (
	"context"

	"holidaze/internal/domain/shared/events"
)

// Notifier fans booking lifecycle events out to interested systems. Delivery
// failures must not undo the remote mutation that produced the event.
type Notifier interface {
	Publish(ctx context.Context, evs ...events.DomainEvent) error
}
