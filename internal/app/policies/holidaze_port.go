package policies

//go:generate mockgen -source=holidaze_port.go -destination=mock/holidaze_port_mock.go -package=mock

import (
	"context"
	"time"

	"holidaze/internal/domain/booking"
)

type VenueAPI interface {
	// Venue fetches a venue together with its owner and bookings.
	Venue(ctx context.Context, id booking.VenueID) (booking.Venue, error)
	SearchVenues(ctx context.Context, query string) ([]booking.VenueSummary, error)
	// Venues lists a page of venues; limit and page fall back to API defaults when <= 0.
	Venues(ctx context.Context, limit, page int) ([]booking.VenueSummary, error)
}

type BookingAPI interface {
	CreateBooking(ctx context.Context, req booking.CreateRequest) (booking.Reservation, error)
	UpdateBooking(ctx context.Context, id booking.ID, req booking.UpdateRequest) (booking.Reservation, error)
	DeleteBooking(ctx context.Context, id booking.ID) error
	ProfileBookings(ctx context.Context, profile string) ([]booking.Reservation, error)
}

type LoginResult struct {
	Name        string
	Email       string
	AccessToken string
	// ExpiresAt is when the access token stops being accepted; zero if unknown.
	ExpiresAt time.Time
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
}
