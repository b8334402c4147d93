package availability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"holidaze/internal/domain/availability"
	"holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
)

func newTestSelector() *availability.Selector {
	blocked := availability.ComputeBlockedDates([]booking.Reservation{reservation("b1", "2025-06-10", "2025-06-15")}, "")
	return availability.NewSelector(d("2025-06-01"), blocked)
}

func TestSelector_Transitions(t *testing.T) {
	s := newTestSelector()
	assert.Equal(t, availability.StateEmpty, s.State())
	assert.False(t, s.CanSubmit())

	assert.False(t, s.PickCheckOut(d("2025-06-20")), "check-out needs a check-in")
	assert.Equal(t, availability.StateEmpty, s.State())

	assert.True(t, s.PickCheckIn(d("2025-06-16")))
	assert.Equal(t, availability.StateCheckInSelected, s.State())
	assert.Equal(t, availability.RangeIncomplete, s.Status())

	assert.True(t, s.PickCheckOut(d("2025-06-18")))
	assert.Equal(t, availability.StateRangeSelected, s.State())
	assert.Equal(t, availability.RangeValid, s.Status())
	assert.True(t, s.CanSubmit())

	s.Reset()
	assert.Equal(t, availability.StateEmpty, s.State())
	assert.True(t, s.CheckIn().IsZero())
}

func TestSelector_UnselectableCheckIn(t *testing.T) {
	s := newTestSelector()
	assert.False(t, s.PickCheckIn(d("2025-06-12")), "blocked")
	assert.False(t, s.PickCheckIn(d("2025-06-15")), "departure day is blocked")
	assert.False(t, s.PickCheckIn(d("2025-05-31")), "before min date")
	assert.False(t, s.PickCheckIn(daterange.Date{}))
	assert.Equal(t, availability.StateEmpty, s.State())
}

func TestSelector_ConflictingRange(t *testing.T) {
	s := newTestSelector()
	assert.True(t, s.PickCheckIn(d("2025-06-05")))
	assert.True(t, s.PickCheckOut(d("2025-06-12")))
	assert.Equal(t, availability.StateRangeSelected, s.State())
	assert.Equal(t, availability.RangeConflict, s.Status())
	assert.False(t, s.CanSubmit())
}

func TestSelector_InvalidOrder(t *testing.T) {
	s := newTestSelector()
	assert.True(t, s.PickCheckIn(d("2025-06-20")))
	assert.True(t, s.PickCheckOut(d("2025-06-20")))
	assert.Equal(t, availability.RangeInvalidOrder, s.Status())
	assert.False(t, s.CanSubmit())
}

func TestSelector_RepickCheckInClearsStaleCheckOut(t *testing.T) {
	s := newTestSelector()
	s.PickCheckIn(d("2025-06-16"))
	s.PickCheckOut(d("2025-06-18"))

	assert.True(t, s.PickCheckIn(d("2025-06-17")))
	assert.Equal(t, "2025-06-18", s.CheckOut().String(), "earlier than check-out keeps it")

	assert.True(t, s.PickCheckIn(d("2025-06-20")))
	assert.True(t, s.CheckOut().IsZero())
	assert.Equal(t, availability.StateCheckInSelected, s.State())
}

func TestRestoreSelector(t *testing.T) {
	blocked := availability.NewBlockedDates()
	s := availability.RestoreSelector(d("2025-06-01"), blocked, daterange.Date{}, d("2025-06-05"))
	assert.Equal(t, availability.StateEmpty, s.State())

	s = availability.RestoreSelector(d("2025-06-01"), blocked, d("2025-06-03"), d("2025-06-05"))
	assert.Equal(t, availability.StateRangeSelected, s.State())
	assert.True(t, s.CanSubmit())
}
