package kafka

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"holidaze/internal/app/policies"
	"holidaze/internal/domain/shared/events"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

// Notifier publishes domain events straight to the broker. Delivery is
// attempted once per event.
type Notifier struct {
	Producer    Publisher
	TopicPrefix string
	Source      string
}

func (n Notifier) Publish(ctx context.Context, evs ...events.DomainEvent) error {
	var errs error
	for _, ev := range evs {
		data, err := json.Marshal(ev)
		if err != nil {
			errs = errors.CombineErrors(errs, errors.Wrapf(err, "kafka: encode %s", ev.EventName()))
			continue
		}
		payload, headers, err := EncodeCloudEvent(Event{
			ID:        uuid.NewString(),
			Name:      ev.EventName(),
			Aggregate: ev.AggregateID(),
			At:        ev.OccurredAt(),
			Data:      data,
		}, n.Source)
		if err != nil {
			errs = errors.CombineErrors(errs, err)
			continue
		}
		if err := n.Producer.Publish(ctx, TopicFor(n.TopicPrefix, ev.EventName()), ev.AggregateID(), payload, headers); err != nil {
			errs = errors.CombineErrors(errs, err)
		}
	}
	return errs
}

var _ policies.Notifier = Notifier{}
