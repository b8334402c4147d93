package dto

import (
	"holidaze/internal/domain/availability"
	"holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
)

type Availability struct {
	VenueID      string         `json:"venue_id"`
	Name         string         `json:"name"`
	Price        float64        `json:"price"`
	MaxGuests    int            `json:"max_guests"`
	MinDate      daterange.Date `json:"min_date"`
	BlockedDates []string       `json:"blocked_dates"`
	// Truncated is set when a reservation was too long to list day by day.
	Truncated bool `json:"truncated,omitempty"`
}

func MapAvailability(v booking.Venue, minDate daterange.Date, blocked availability.BlockedDates) Availability {
	return Availability{
		VenueID:      string(v.ID),
		Name:         v.Name,
		Price:        v.Price,
		MaxGuests:    v.MaxGuests,
		MinDate:      minDate,
		BlockedDates: blocked.Sorted(),
		Truncated:    blocked.Truncated(),
	}
}

type Quote struct {
	VenueID     string                   `json:"venue_id"`
	CheckIn     daterange.Date           `json:"check_in"`
	CheckOut    daterange.Date           `json:"check_out"`
	Status      availability.RangeStatus `json:"status"`
	Message     string                   `json:"message,omitempty"`
	Nights      int                      `json:"nights"`
	Price       float64                  `json:"price"`
	Total       float64                  `json:"total"`
	Submittable bool                     `json:"submittable"`
}

func MapQuote(v booking.Venue, checkIn, checkOut daterange.Date, q availability.Quote) Quote {
	return Quote{
		VenueID:     string(v.ID),
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Status:      q.Status,
		Message:     q.Status.Message(),
		Nights:      q.Nights,
		Price:       v.Price,
		Total:       q.Total,
		Submittable: q.Status.Submittable(),
	}
}

type Selection struct {
	Accepted  bool                       `json:"accepted"`
	State     availability.SelectorState `json:"state"`
	CheckIn   daterange.Date             `json:"check_in"`
	CheckOut  daterange.Date             `json:"check_out"`
	Status    availability.RangeStatus   `json:"status"`
	Message   string                     `json:"message,omitempty"`
	CanSubmit bool                       `json:"can_submit"`
}

func MapSelection(s *availability.Selector, accepted bool) Selection {
	status := s.Status()
	out := Selection{
		Accepted:  accepted,
		State:     s.State(),
		CheckIn:   s.CheckIn(),
		CheckOut:  s.CheckOut(),
		Status:    status,
		CanSubmit: s.CanSubmit(),
	}
	if s.State() == availability.StateRangeSelected {
		out.Message = status.Message()
	}
	return out
}
