package venues

import (
	"context"
	"sort"

	"github.com/cockroachdb/errors"

	"holidaze/internal/app/dto"
	"holidaze/internal/app/middleware"
	"holidaze/internal/app/policies"
	"holidaze/internal/app/queries"
	"holidaze/internal/domain/auth"
	domainavailability "holidaze/internal/domain/availability"
	domainbooking "holidaze/internal/domain/booking"
)

var ErrVenueRequired = errors.New("venues: venue id required")

// HostBookingsQuery asks for the bookings of a venue the caller owns.
type HostBookingsQuery struct {
	VenueID string
}

func (HostBookingsQuery) Key() string           { return "venues.host_bookings" }
func (HostBookingsQuery) RequiresSession() bool { return true }

// HostBookingsHandler prices every booking of the venue the way the guest
// saw it: noon-normalised nights in the calendar zone times the nightly rate.
type HostBookingsHandler struct {
	Venues policies.VenueAPI
	Engine domainavailability.Engine
}

func (h *HostBookingsHandler) Handle(ctx context.Context, q HostBookingsQuery) (dto.HostBookings, error) {
	if q.VenueID == "" {
		return dto.HostBookings{}, ErrVenueRequired
	}
	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		return dto.HostBookings{}, middleware.ErrUnauthenticated
	}
	venue, err := h.Venues.Venue(ctx, domainbooking.VenueID(q.VenueID))
	if err != nil {
		return dto.HostBookings{}, err
	}
	if !venue.OwnedBy(session.Name) {
		return dto.HostBookings{}, errors.Wrapf(domainbooking.ErrNotVenueOwner, "venue %s", venue.ID)
	}

	reservations := append([]domainbooking.Reservation(nil), venue.Bookings...)
	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].DateFrom.Before(reservations[j].DateFrom)
	})
	out := dto.HostBookings{
		VenueID:  string(venue.ID),
		Name:     venue.Name,
		Price:    venue.Price,
		Bookings: make([]dto.Booking, 0, len(reservations)),
	}
	for _, r := range reservations {
		b := dto.MapBooking(r, venue.Price)
		b.Nights = h.Engine.Nights(r.DateFrom, r.DateTo)
		b.Total = domainavailability.ComputeTotal(b.Nights, venue.Price)
		if r.Customer != nil {
			b.Customer = r.Customer.Name
			if b.Customer == "" {
				b.Customer = r.Customer.Email
			}
		}
		out.Bookings = append(out.Bookings, b)
		out.Revenue += b.Total
	}
	return out, nil
}

var _ queries.Handler[HostBookingsQuery, dto.HostBookings] = (*HostBookingsHandler)(nil)
