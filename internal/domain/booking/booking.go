package booking

import (
	"errors"
	"sort"
	"strings"

	"holidaze/internal/domain/shared/daterange"
)

var (
	ErrInvalidGuests   = errors.New("booking: guests count must be positive")
	ErrTooManyGuests   = errors.New("booking: guests exceed venue capacity")
	ErrVenueRequired   = errors.New("booking: venue id required")
	ErrBookingNotFound = errors.New("booking: not found")
	ErrEmptyUpdate     = errors.New("booking: update has no fields")
	ErrNotVenueOwner   = errors.New("booking: only the venue owner may see its bookings")
)

type ID string

type VenueID string

// Reservation is a booking owned by the remote API; the gateway only reads snapshots of it.
type Reservation struct {
	ID       ID
	DateFrom daterange.Date
	DateTo   daterange.Date
	Guests   int
	Venue    *VenueSummary
	// Customer is only present when the venue owner fetches the venue.
	Customer *Owner
}

// Stay is the reservation's occupancy as a half-open range.
func (r Reservation) Stay() daterange.DateRange {
	return daterange.DateRange{CheckIn: r.DateFrom, CheckOut: r.DateTo}
}

type Owner struct {
	Name  string
	Email string
}

type VenueSummary struct {
	ID        VenueID
	Name      string
	Price     float64
	MaxGuests int
	Rating    float64
}

type Venue struct {
	ID        VenueID
	Name      string
	Price     float64
	MaxGuests int
	Owner     *Owner
	Bookings  []Reservation
}

// Reservation looks up one of the venue's bookings by id.
func (v Venue) Reservation(id ID) (Reservation, bool) {
	for _, r := range v.Bookings {
		if r.ID == id {
			return r, true
		}
	}
	return Reservation{}, false
}

// OwnedBy reports whether the profile name is the venue's owner. Profile
// names compare case-insensitively.
func (v Venue) OwnedBy(name string) bool {
	name = strings.TrimSpace(name)
	return v.Owner != nil && name != "" && strings.EqualFold(v.Owner.Name, name)
}

// ValidateGuests checks a head count against the venue capacity. A venue with
// no declared capacity accepts any positive count.
func (v Venue) ValidateGuests(guests int) error {
	if guests <= 0 {
		return ErrInvalidGuests
	}
	if v.MaxGuests > 0 && guests > v.MaxGuests {
		return ErrTooManyGuests
	}
	return nil
}

// CreateRequest is the body of a new booking.
type CreateRequest struct {
	DateFrom daterange.Date
	DateTo   daterange.Date
	Guests   int
	VenueID  VenueID
}

func (r CreateRequest) Validate() error {
	if r.VenueID == "" {
		return ErrVenueRequired
	}
	if r.Guests <= 0 {
		return ErrInvalidGuests
	}
	return nil
}

// UpdateRequest carries a partial change; nil fields are left untouched remotely.
type UpdateRequest struct {
	DateFrom *daterange.Date
	DateTo   *daterange.Date
	Guests   *int
}

func (r UpdateRequest) IsEmpty() bool {
	return r.DateFrom == nil && r.DateTo == nil && r.Guests == nil
}

func (r UpdateRequest) ChangesDates() bool {
	return r.DateFrom != nil || r.DateTo != nil
}

// Apply returns the reservation as it would look after the update.
func (r UpdateRequest) Apply(current Reservation) Reservation {
	next := current
	if r.DateFrom != nil {
		next.DateFrom = *r.DateFrom
	}
	if r.DateTo != nil {
		next.DateTo = *r.DateTo
	}
	if r.Guests != nil {
		next.Guests = *r.Guests
	}
	return next
}

// SplitByTense separates a profile's reservations into upcoming ones (ending
// today or later, soonest first) and previous ones (most recent first).
func SplitByTense(reservations []Reservation, today daterange.Date) (upcoming, previous []Reservation) {
	for _, r := range reservations {
		if r.DateTo.Before(today) {
			previous = append(previous, r)
			continue
		}
		upcoming = append(upcoming, r)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DateFrom.Before(upcoming[j].DateFrom)
	})
	sort.SliceStable(previous, func(i, j int) bool {
		return previous[i].DateFrom.After(previous[j].DateFrom)
	})
	return upcoming, previous
}
