package booking

import (
	"time"

	"holidaze/internal/domain/shared/daterange"
)

type BookingCreated struct {
	BookingID ID                  `json:"booking_id"`
	VenueID   VenueID             `json:"venue_id"`
	User      string              `json:"user"`
	Range     daterange.DateRange `json:"range"`
	Guests    int                 `json:"guests"`
	Nights    int                 `json:"nights"`
	Total     float64             `json:"total"`
	At        time.Time           `json:"at"`
}

func (e BookingCreated) EventName() string     { return "booking.created" }
func (e BookingCreated) AggregateID() string   { return string(e.BookingID) }
func (e BookingCreated) OccurredAt() time.Time { return e.At }

type BookingUpdated struct {
	BookingID ID                  `json:"booking_id"`
	VenueID   VenueID             `json:"venue_id"`
	User      string              `json:"user"`
	Range     daterange.DateRange `json:"range"`
	Guests    int                 `json:"guests"`
	At        time.Time           `json:"at"`
}

func (e BookingUpdated) EventName() string     { return "booking.updated" }
func (e BookingUpdated) AggregateID() string   { return string(e.BookingID) }
func (e BookingUpdated) OccurredAt() time.Time { return e.At }

type BookingCancelled struct {
	BookingID ID        `json:"booking_id"`
	User      string    `json:"user"`
	At        time.Time `json:"at"`
}

func (e BookingCancelled) EventName() string     { return "booking.cancelled" }
func (e BookingCancelled) AggregateID() string   { return string(e.BookingID) }
func (e BookingCancelled) OccurredAt() time.Time { return e.At }
