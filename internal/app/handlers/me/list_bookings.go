package me

import (
	"context"
	"errors"

	"holidaze/internal/app/dto"
	"holidaze/internal/app/middleware"
	"holidaze/internal/app/policies"
	"holidaze/internal/app/queries"
	"holidaze/internal/domain/auth"
	domainavailability "holidaze/internal/domain/availability"
	domainbooking "holidaze/internal/domain/booking"
)

type Tense string

const (
	TenseAll      Tense = ""
	TenseUpcoming Tense = "upcoming"
	TensePrevious Tense = "previous"
)

var ErrUnknownTense = errors.New("me: unknown booking tense")

type ListBookingsQuery struct {
	Tense Tense
}

func (q ListBookingsQuery) Key() string           { return "me.bookings" }
func (q ListBookingsQuery) RequiresSession() bool { return true }

// ListBookingsHandler backs the profile's upcoming and previous booking tabs.
type ListBookingsHandler struct {
	Bookings policies.BookingAPI
	Engine   domainavailability.Engine
}

func (h *ListBookingsHandler) Handle(ctx context.Context, q ListBookingsQuery) (dto.BookingList, error) {
	switch q.Tense {
	case TenseAll, TenseUpcoming, TensePrevious:
	default:
		return dto.BookingList{}, ErrUnknownTense
	}
	session, ok := auth.SessionFromContext(ctx)
	if !ok {
		return dto.BookingList{}, middleware.ErrUnauthenticated
	}
	all, err := h.Bookings.ProfileBookings(ctx, session.Name)
	if err != nil {
		return dto.BookingList{}, err
	}
	upcoming, previous := domainbooking.SplitByTense(all, h.Engine.Today())
	out := dto.BookingList{Upcoming: []dto.Booking{}, Previous: []dto.Booking{}}
	if q.Tense != TensePrevious {
		out.Upcoming = dto.MapBookings(upcoming)
	}
	if q.Tense != TenseUpcoming {
		out.Previous = dto.MapBookings(previous)
	}
	return out, nil
}

var _ queries.Handler[ListBookingsQuery, dto.BookingList] = (*ListBookingsHandler)(nil)
