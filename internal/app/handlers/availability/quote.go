package availability

import (
	"context"

	"holidaze/internal/app/dto"
	"holidaze/internal/app/policies"
	"holidaze/internal/app/queries"
	domainavailability "holidaze/internal/domain/availability"
	"holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
)

type QuoteQuery struct {
	VenueID          string
	CheckIn          daterange.Date
	CheckOut         daterange.Date
	ExcludeBookingID string
}

func (q QuoteQuery) Key() string { return "availability.quote" }

type QuoteHandler struct {
	Venues policies.VenueAPI
	Engine domainavailability.Engine
}

func (h *QuoteHandler) Handle(ctx context.Context, q QuoteQuery) (dto.Quote, error) {
	if q.VenueID == "" {
		return dto.Quote{}, ErrVenueRequired
	}
	venue, err := h.Venues.Venue(ctx, booking.VenueID(q.VenueID))
	if err != nil {
		return dto.Quote{}, err
	}
	quote := h.Engine.Quote(venue, q.CheckIn, q.CheckOut, booking.ID(q.ExcludeBookingID))
	return dto.MapQuote(venue, q.CheckIn, q.CheckOut, quote), nil
}

var _ queries.Handler[QuoteQuery, dto.Quote] = (*QuoteHandler)(nil)
