package availability

import (
	"context"
	"errors"

	"holidaze/internal/app/dto"
	"holidaze/internal/app/policies"
	"holidaze/internal/app/queries"
	domainavailability "holidaze/internal/domain/availability"
	"holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
)

type SelectionEvent string

const (
	EventPickCheckIn  SelectionEvent = "pick_check_in"
	EventPickCheckOut SelectionEvent = "pick_check_out"
	EventReset        SelectionEvent = "reset"
)

var ErrUnknownEvent = errors.New("availability: unknown selection event")

// SelectionQuery replays the client's current picks and applies one event.
// The gateway keeps no picker state between calls.
type SelectionQuery struct {
	VenueID          string
	ExcludeBookingID string
	CheckIn          daterange.Date
	CheckOut         daterange.Date
	Event            SelectionEvent
	Date             daterange.Date
}

func (q SelectionQuery) Key() string { return "availability.selection" }

type SelectionHandler struct {
	Venues policies.VenueAPI
	Engine domainavailability.Engine
}

func (h *SelectionHandler) Handle(ctx context.Context, q SelectionQuery) (dto.Selection, error) {
	if q.VenueID == "" {
		return dto.Selection{}, ErrVenueRequired
	}
	venue, err := h.Venues.Venue(ctx, booking.VenueID(q.VenueID))
	if err != nil {
		return dto.Selection{}, err
	}
	blocked := domainavailability.ComputeBlockedDates(venue.Bookings, booking.ID(q.ExcludeBookingID))
	sel := domainavailability.RestoreSelector(h.Engine.Today(), blocked, q.CheckIn, q.CheckOut)

	var accepted bool
	switch q.Event {
	case EventPickCheckIn:
		accepted = sel.PickCheckIn(q.Date)
	case EventPickCheckOut:
		accepted = sel.PickCheckOut(q.Date)
	case EventReset:
		sel.Reset()
		accepted = true
	default:
		return dto.Selection{}, ErrUnknownEvent
	}
	return dto.MapSelection(sel, accepted), nil
}

var _ queries.Handler[SelectionQuery, dto.Selection] = (*SelectionHandler)(nil)
