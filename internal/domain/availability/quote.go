package availability

import (
	"time"

	"holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
)

// Engine binds the pure functions to a calendar location and clock.
type Engine struct {
	Location *time.Location
	Now      func() time.Time
}

func (e Engine) location() *time.Location {
	if e.Location == nil {
		return time.UTC
	}
	return e.Location
}

// Today is the earliest selectable check-in date.
func (e Engine) Today() daterange.Date {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	return daterange.Today(now(), e.location())
}

func (e Engine) Nights(checkIn, checkOut daterange.Date) int {
	return NightsIn(checkIn, checkOut, e.location())
}

// Quote is everything the booking panel shows for a proposed stay.
type Quote struct {
	Status  RangeStatus
	Nights  int
	Total   float64
	MinDate daterange.Date
	Blocked BlockedDates
}

// Quote evaluates a proposed stay against a venue snapshot. Nights and total
// are reported for any ordered pair, even a conflicting one, so the caller can
// still display the price next to the conflict message.
func (e Engine) Quote(venue booking.Venue, checkIn, checkOut daterange.Date, exclude booking.ID) Quote {
	minDate := e.Today()
	blocked := ComputeBlockedDates(venue.Bookings, exclude)
	nights := e.Nights(checkIn, checkOut)
	return Quote{
		Status:  ValidateRange(checkIn, checkOut, minDate, blocked),
		Nights:  nights,
		Total:   ComputeTotal(nights, venue.Price),
		MinDate: minDate,
		Blocked: blocked,
	}
}
