package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"holidaze/internal/app/commands"
	"holidaze/internal/app/dto"
	"holidaze/internal/app/middleware"
	"holidaze/internal/app/policies"
	domainavailability "holidaze/internal/domain/availability"
	domainbooking "holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
	"holidaze/internal/domain/shared/events"
)

var ErrBookingRequired = errors.New("booking: booking id required")

// UpdateBookingCommand changes an existing reservation. Nil fields keep their
// current value.
type UpdateBookingCommand struct {
	BookingID       string
	VenueID         string
	CheckIn         *daterange.Date
	CheckOut        *daterange.Date
	Guests          *int
	IdempotencyKeyV string
}

func (c UpdateBookingCommand) Key() string            { return "booking.update" }
func (c UpdateBookingCommand) IdempotencyKey() string { return c.IdempotencyKeyV }
func (c UpdateBookingCommand) ExclusiveKey() string   { return c.BookingID }
func (c UpdateBookingCommand) RequiresSession() bool  { return true }

func (c UpdateBookingCommand) Replay(payload []byte) (any, error) {
	return middleware.ReplayJSON[UpdateBookingResult](payload)
}

type UpdateBookingResult struct {
	Booking dto.Booking `json:"booking"`
}

type UpdateBookingHandler struct {
	Venues   policies.VenueAPI
	Bookings policies.BookingAPI
	Notifier policies.Notifier
	Engine   domainavailability.Engine
	Logger   *slog.Logger
	Now      func() time.Time
}

func (h *UpdateBookingHandler) Handle(ctx context.Context, cmd UpdateBookingCommand) (*UpdateBookingResult, error) {
	if cmd.BookingID == "" {
		return nil, ErrBookingRequired
	}
	if cmd.VenueID == "" {
		return nil, domainbooking.ErrVenueRequired
	}
	req := domainbooking.UpdateRequest{DateFrom: cmd.CheckIn, DateTo: cmd.CheckOut, Guests: cmd.Guests}
	if req.IsEmpty() {
		return nil, domainbooking.ErrEmptyUpdate
	}

	venue, err := h.Venues.Venue(ctx, domainbooking.VenueID(cmd.VenueID))
	if err != nil {
		return nil, err
	}
	id := domainbooking.ID(cmd.BookingID)
	current, ok := venue.Reservation(id)
	if !ok {
		return nil, domainbooking.ErrBookingNotFound
	}
	next := req.Apply(current)
	if req.Guests != nil {
		if err := venue.ValidateGuests(next.Guests); err != nil {
			return nil, err
		}
	}

	if req.ChangesDates() {
		// an ongoing stay may move its check-out without its past check-in
		// tripping the minimum-date rule
		var minDate daterange.Date
		if req.DateFrom != nil {
			minDate = h.Engine.Today()
		}
		blocked := domainavailability.ComputeBlockedDates(venue.Bookings, id)
		if status := domainavailability.ValidateRange(next.DateFrom, next.DateTo, minDate, blocked); !status.Submittable() {
			return nil, rejectRange(ctx, h.Notifier, h.Logger, status, venue.ID, next.Stay(), h.now())
		}
	}

	updated, err := h.Bookings.UpdateBooking(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if updated.ID == "" {
		updated = next
	}

	var rec events.Recorder
	rec.Record(domainbooking.BookingUpdated{
		BookingID: id,
		VenueID:   venue.ID,
		User:      userName(ctx),
		Range:     next.Stay(),
		Guests:    next.Guests,
		At:        h.now(),
	})
	publish(ctx, h.Notifier, h.Logger, &rec)

	return &UpdateBookingResult{Booking: dto.MapBooking(updated, venue.Price)}, nil
}

func (h *UpdateBookingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

var _ commands.Handler[UpdateBookingCommand, *UpdateBookingResult] = (*UpdateBookingHandler)(nil)
var _ middleware.IdempotentCommand = UpdateBookingCommand{}
var _ middleware.ExclusiveCommand = UpdateBookingCommand{}
