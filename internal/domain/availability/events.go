package availability

import (
	"time"

	"holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
)

// OverbookingPrevented is recorded when a submission is refused because the
// proposed stay overlaps the venue's blocked dates.
type OverbookingPrevented struct {
	VenueID booking.VenueID     `json:"venue_id"`
	Range   daterange.DateRange `json:"range"`
	At      time.Time           `json:"at"`
}

func (e OverbookingPrevented) EventName() string     { return "calendar.overbooking_prevented" }
func (e OverbookingPrevented) AggregateID() string   { return string(e.VenueID) }
func (e OverbookingPrevented) OccurredAt() time.Time { return e.At }
