package kafka

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const DefaultSource = "app://holidaze"

type cloudEvent struct {
	SpecVersion     string          `json:"specversion"`
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Source          string          `json:"source"`
	Subject         string          `json:"subject,omitempty"`
	Time            time.Time       `json:"time"`
	DataContentType string          `json:"datacontenttype"`
	Data            json.RawMessage `json:"data"`
}

// Event is one domain event ready to be framed for the broker.
type Event struct {
	ID        string
	Name      string
	Aggregate string
	At        time.Time
	Data      json.RawMessage
}

// EncodeCloudEvent frames ev as a structured-mode CloudEvent and returns the
// message value with its headers.
func EncodeCloudEvent(ev Event, source string) ([]byte, map[string]string, error) {
	if source == "" {
		source = DefaultSource
	}
	payload, err := json.Marshal(cloudEvent{
		SpecVersion:     "1.0",
		ID:              ev.ID,
		Type:            ev.Name + ".v1",
		Source:          source,
		Subject:         ev.Aggregate,
		Time:            ev.At.UTC(),
		DataContentType: "application/json",
		Data:            ev.Data,
	})
	if err != nil {
		return nil, nil, errors.Wrapf(err, "kafka: encode %s", ev.Name)
	}
	headers := map[string]string{
		"content-type": "application/cloudevents+json",
		"ce_id":        ev.ID,
		"ce_type":      ev.Name + ".v1",
	}
	return payload, headers, nil
}

// TopicFor groups events by their first name segment: booking.created goes to
// "<prefix>booking.events.v1".
func TopicFor(prefix, name string) string {
	base := name
	if idx := strings.IndexRune(name, '.'); idx > 0 {
		base = name[:idx]
	}
	return prefix + base + ".events.v1"
}
