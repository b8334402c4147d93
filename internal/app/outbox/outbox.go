// Package outbox parks domain events in durable storage so a relay can
// deliver them after the request that raised them has returned.
package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"holidaze/internal/app/policies"
	"holidaze/internal/domain/shared/events"
)

// Record is one event waiting for delivery. Headers travel with the message
// to the broker.
type Record struct {
	ID         string
	Name       string
	Aggregate  string
	Payload    []byte
	OccurredAt time.Time
	Headers    map[string]string
}

type Outbox interface {
	Add(ctx context.Context, rec Record) error
}

// Encode serialises ev as JSON under a new id.
func Encode(ev events.DomainEvent, newID func() string) (Record, error) {
	payload, err := json.Marshal(ev)
	if err != nil {
		return Record{}, errors.Wrapf(err, "outbox: encode %s", ev.EventName())
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return Record{
		ID:         newID(),
		Name:       ev.EventName(),
		Aggregate:  ev.AggregateID(),
		Payload:    payload,
		OccurredAt: ev.OccurredAt(),
		Headers:    map[string]string{},
	}, nil
}

// Notifier stores events in Box instead of sending them. Headers, when set,
// adds request-scoped metadata such as the request id to every record.
type Notifier struct {
	Box     Outbox
	NewID   func() string
	Headers func(ctx context.Context) map[string]string
}

func (n Notifier) Publish(ctx context.Context, evs ...events.DomainEvent) error {
	if n.Box == nil {
		return nil
	}
	var extra map[string]string
	if n.Headers != nil {
		extra = n.Headers(ctx)
	}
	var errs error
	for _, ev := range evs {
		rec, err := Encode(ev, n.NewID)
		if err != nil {
			errs = errors.CombineErrors(errs, err)
			continue
		}
		for k, v := range extra {
			if v != "" {
				rec.Headers[k] = v
			}
		}
		if err := n.Box.Add(ctx, rec); err != nil {
			errs = errors.CombineErrors(errs, err)
		}
	}
	return errs
}

var _ policies.Notifier = Notifier{}
