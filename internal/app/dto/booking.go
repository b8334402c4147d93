package dto

import (
	"holidaze/internal/domain/availability"
	"holidaze/internal/domain/booking"
	"holidaze/internal/domain/favorites"
	"holidaze/internal/domain/shared/daterange"
)

type VenueSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	MaxGuests int     `json:"max_guests"`
	Rating    float64 `json:"rating,omitempty"`
}

func MapVenueSummary(v booking.VenueSummary) VenueSummary {
	return VenueSummary{
		ID:        string(v.ID),
		Name:      v.Name,
		Price:     v.Price,
		MaxGuests: v.MaxGuests,
		Rating:    v.Rating,
	}
}

type Booking struct {
	ID       string         `json:"id"`
	DateFrom daterange.Date `json:"date_from"`
	DateTo   daterange.Date `json:"date_to"`
	Guests   int            `json:"guests"`
	Nights   int            `json:"nights"`
	Total    float64        `json:"total"`
	Venue    *VenueSummary  `json:"venue,omitempty"`
	Customer string         `json:"customer,omitempty"`
}

// MapBooking prices a reservation at the given nightly rate. When the
// reservation embeds its venue, that venue's price wins.
func MapBooking(r booking.Reservation, price float64) Booking {
	out := Booking{
		ID:       string(r.ID),
		DateFrom: r.DateFrom,
		DateTo:   r.DateTo,
		Guests:   r.Guests,
		Nights:   availability.Nights(r.DateFrom, r.DateTo),
	}
	if r.Venue != nil {
		summary := MapVenueSummary(*r.Venue)
		out.Venue = &summary
		price = r.Venue.Price
	}
	out.Total = availability.ComputeTotal(out.Nights, price)
	return out
}

type BookingList struct {
	Upcoming []Booking `json:"upcoming"`
	Previous []Booking `json:"previous"`
}

func MapBookings(rs []booking.Reservation) []Booking {
	out := make([]Booking, 0, len(rs))
	for _, r := range rs {
		out = append(out, MapBooking(r, 0))
	}
	return out
}

type Favorites struct {
	Owner    string   `json:"owner"`
	VenueIDs []string `json:"venue_ids"`
}

func MapFavorites(l *favorites.List) Favorites {
	out := Favorites{Owner: l.Owner, VenueIDs: make([]string, 0, len(l.VenueIDs))}
	for _, id := range l.VenueIDs {
		out.VenueIDs = append(out.VenueIDs, string(id))
	}
	return out
}

// HostBookings is the owner's view of everything booked at one venue.
type HostBookings struct {
	VenueID  string    `json:"venue_id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Bookings []Booking `json:"bookings"`
	Revenue  float64   `json:"revenue"`
}
