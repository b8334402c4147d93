package holidaze

import (
	"github.com/cockroachdb/errors"

	"holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
)

type ownerWire struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type venueWire struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Price     float64       `json:"price"`
	MaxGuests int           `json:"maxGuests"`
	Rating    float64       `json:"rating"`
	Owner     *ownerWire    `json:"owner,omitempty"`
	Bookings  []bookingWire `json:"bookings,omitempty"`
}

type bookingWire struct {
	ID       string     `json:"id"`
	DateFrom string     `json:"dateFrom"`
	DateTo   string     `json:"dateTo"`
	Guests   int        `json:"guests"`
	Venue    *venueWire `json:"venue,omitempty"`
	Customer *ownerWire `json:"customer,omitempty"`
}

type createBookingWire struct {
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Guests   int    `json:"guests"`
	VenueID  string `json:"venueId"`
}

type updateBookingWire struct {
	DateFrom *string `json:"dateFrom,omitempty"`
	DateTo   *string `json:"dateTo,omitempty"`
	Guests   *int    `json:"guests,omitempty"`
}

func (w venueWire) summary() booking.VenueSummary {
	return booking.VenueSummary{
		ID:        booking.VenueID(w.ID),
		Name:      w.Name,
		Price:     w.Price,
		MaxGuests: w.MaxGuests,
		Rating:    w.Rating,
	}
}

func (w venueWire) toDomain() (booking.Venue, error) {
	v := booking.Venue{
		ID:        booking.VenueID(w.ID),
		Name:      w.Name,
		Price:     w.Price,
		MaxGuests: w.MaxGuests,
	}
	if w.Owner != nil {
		v.Owner = &booking.Owner{Name: w.Owner.Name, Email: w.Owner.Email}
	}
	v.Bookings = make([]booking.Reservation, 0, len(w.Bookings))
	for _, bw := range w.Bookings {
		r, err := bw.toDomain()
		if err != nil {
			return booking.Venue{}, errors.Wrapf(err, "venue %s", w.ID)
		}
		v.Bookings = append(v.Bookings, r)
	}
	return v, nil
}

func (w bookingWire) toDomain() (booking.Reservation, error) {
	from, err := daterange.ParseDate(w.DateFrom)
	if err != nil {
		return booking.Reservation{}, errors.Wrapf(err, "booking %s dateFrom %q", w.ID, w.DateFrom)
	}
	to, err := daterange.ParseDate(w.DateTo)
	if err != nil {
		return booking.Reservation{}, errors.Wrapf(err, "booking %s dateTo %q", w.ID, w.DateTo)
	}
	r := booking.Reservation{ID: booking.ID(w.ID), DateFrom: from, DateTo: to, Guests: w.Guests}
	if w.Venue != nil {
		s := w.Venue.summary()
		r.Venue = &s
	}
	if w.Customer != nil {
		r.Customer = &booking.Owner{Name: w.Customer.Name, Email: w.Customer.Email}
	}
	return r, nil
}

func newCreateBookingWire(req booking.CreateRequest) createBookingWire {
	return createBookingWire{
		DateFrom: req.DateFrom.ISODateTime(),
		DateTo:   req.DateTo.ISODateTime(),
		Guests:   req.Guests,
		VenueID:  string(req.VenueID),
	}
}

func newUpdateBookingWire(req booking.UpdateRequest) updateBookingWire {
	var w updateBookingWire
	if req.DateFrom != nil {
		s := req.DateFrom.ISODateTime()
		w.DateFrom = &s
	}
	if req.DateTo != nil {
		s := req.DateTo.ISODateTime()
		w.DateTo = &s
	}
	if req.Guests != nil {
		g := *req.Guests
		w.Guests = &g
	}
	return w
}
