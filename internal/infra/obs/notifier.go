package obs

import (
	"context"
	"log/slog"

	"holidaze/internal/app/policies"
	"holidaze/internal/domain/shared/events"
)

// LogNotifier writes events to the log when no broker is configured.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) Publish(ctx context.Context, evs ...events.DomainEvent) error {
	if n.Logger == nil {
		return nil
	}
	for _, ev := range evs {
		n.Logger.InfoContext(ctx, "event", "name", ev.EventName(), "aggregate", ev.AggregateID(), "at", ev.OccurredAt(), "request_id", RequestIDFromContext(ctx))
	}
	return nil
}

var _ policies.Notifier = LogNotifier{}
