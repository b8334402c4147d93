package availability

import (
	"context"
	"errors"

	"holidaze/internal/app/dto"
	"holidaze/internal/app/policies"
	"holidaze/internal/app/queries"
	domainavailability "holidaze/internal/domain/availability"
	"holidaze/internal/domain/booking"
)

var ErrVenueRequired = errors.New("availability: venue id required")

type GetAvailabilityQuery struct {
	VenueID          string
	ExcludeBookingID string
}

func (q GetAvailabilityQuery) Key() string { return "availability.get" }

// GetAvailabilityHandler exposes the blocked-date set the calendar renders.
type GetAvailabilityHandler struct {
	Venues policies.VenueAPI
	Engine domainavailability.Engine
}

func (h *GetAvailabilityHandler) Handle(ctx context.Context, q GetAvailabilityQuery) (dto.Availability, error) {
	if q.VenueID == "" {
		return dto.Availability{}, ErrVenueRequired
	}
	venue, err := h.Venues.Venue(ctx, booking.VenueID(q.VenueID))
	if err != nil {
		return dto.Availability{}, err
	}
	blocked := domainavailability.ComputeBlockedDates(venue.Bookings, booking.ID(q.ExcludeBookingID))
	return dto.MapAvailability(venue, h.Engine.Today(), blocked), nil
}

var _ queries.Handler[GetAvailabilityQuery, dto.Availability] = (*GetAvailabilityHandler)(nil)
