package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cancelled struct {
	ID string    `json:"booking_id"`
	At time.Time `json:"at"`
}

func (c cancelled) EventName() string     { return "booking.cancelled" }
func (c cancelled) AggregateID() string   { return c.ID }
func (c cancelled) OccurredAt() time.Time { return c.At }

type memoryBox struct {
	records []Record
	failFor string
}

func (b *memoryBox) Add(_ context.Context, rec Record) error {
	if rec.Aggregate == b.failFor {
		return errors.New("write failed for " + rec.Aggregate)
	}
	b.records = append(b.records, rec)
	return nil
}

func TestEncode(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec, err := Encode(cancelled{ID: "b1", At: at}, func() string { return "fixed" })
	require.NoError(t, err)

	assert.Equal(t, "fixed", rec.ID)
	assert.Equal(t, "booking.cancelled", rec.Name)
	assert.Equal(t, "b1", rec.Aggregate)
	assert.Equal(t, at, rec.OccurredAt)
	assert.JSONEq(t, `{"booking_id":"b1","at":"2025-06-01T12:00:00Z"}`, string(rec.Payload))
	assert.NotNil(t, rec.Headers)
}

func TestNotifier_Publish(t *testing.T) {
	box := &memoryBox{}
	n := Notifier{Box: box, Headers: func(context.Context) map[string]string {
		return map[string]string{"x-request-id": "req-1", "x-empty": ""}
	}}

	require.NoError(t, n.Publish(context.Background(), cancelled{ID: "b1"}, cancelled{ID: "b2"}))
	require.Len(t, box.records, 2)
	assert.NotEqual(t, box.records[0].ID, box.records[1].ID)
	assert.Equal(t, "b2", box.records[1].Aggregate)
	assert.Equal(t, map[string]string{"x-request-id": "req-1"}, box.records[0].Headers)
}

func TestNotifier_KeepsGoingAfterStoreError(t *testing.T) {
	box := &memoryBox{failFor: "b1"}
	err := Notifier{Box: box}.Publish(context.Background(), cancelled{ID: "b1"}, cancelled{ID: "b2"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write failed for b1")
	require.Len(t, box.records, 1)
	assert.Equal(t, "b2", box.records[0].Aggregate)

	assert.NoError(t, Notifier{}.Publish(context.Background(), cancelled{ID: "b1"}))
}
