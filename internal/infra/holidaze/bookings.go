package holidaze

import (
	"context"
	"net/http"
	"net/url"

	"holidaze/internal/domain/booking"
)

func (c *Client) CreateBooking(ctx context.Context, req booking.CreateRequest) (booking.Reservation, error) {
	var w bookingWire
	if err := c.do(ctx, http.MethodPost, "/holidaze/bookings", nil, newCreateBookingWire(req), &w); err != nil {
		return booking.Reservation{}, err
	}
	return w.toDomain()
}

// UpdateBooking sends only the fields present in req.
func (c *Client) UpdateBooking(ctx context.Context, id booking.ID, req booking.UpdateRequest) (booking.Reservation, error) {
	var w bookingWire
	if err := c.do(ctx, http.MethodPut, "/holidaze/bookings/"+url.PathEscape(string(id)), nil, newUpdateBookingWire(req), &w); err != nil {
		return booking.Reservation{}, err
	}
	return w.toDomain()
}

func (c *Client) DeleteBooking(ctx context.Context, id booking.ID) error {
	return c.do(ctx, http.MethodDelete, "/holidaze/bookings/"+url.PathEscape(string(id)), nil, nil, nil)
}

// ProfileBookings lists a profile's bookings with their venues embedded.
func (c *Client) ProfileBookings(ctx context.Context, profile string) ([]booking.Reservation, error) {
	var ws []bookingWire
	path := "/holidaze/profiles/" + url.PathEscape(profile) + "/bookings"
	if err := c.do(ctx, http.MethodGet, path, url.Values{"_venue": {"true"}}, nil, &ws); err != nil {
		return nil, err
	}
	out := make([]booking.Reservation, 0, len(ws))
	for _, w := range ws {
		r, err := w.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
