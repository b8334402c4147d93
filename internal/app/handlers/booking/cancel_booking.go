package booking

import (
	"context"
	"log/slog"
	"time"

	"holidaze/internal/app/commands"
	"holidaze/internal/app/middleware"
	"holidaze/internal/app/policies"
	domainbooking "holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/events"
)

type CancelBookingCommand struct {
	BookingID string
}

func (c CancelBookingCommand) Key() string           { return "booking.cancel" }
func (c CancelBookingCommand) ExclusiveKey() string  { return c.BookingID }
func (c CancelBookingCommand) RequiresSession() bool { return true }

type CancelBookingResult struct {
	BookingID string `json:"booking_id"`
}

type CancelBookingHandler struct {
	Bookings policies.BookingAPI
	Notifier policies.Notifier
	Logger   *slog.Logger
	Now      func() time.Time
}

func (h *CancelBookingHandler) Handle(ctx context.Context, cmd CancelBookingCommand) (*CancelBookingResult, error) {
	if cmd.BookingID == "" {
		return nil, ErrBookingRequired
	}
	id := domainbooking.ID(cmd.BookingID)
	if err := h.Bookings.DeleteBooking(ctx, id); err != nil {
		return nil, err
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	var rec events.Recorder
	rec.Record(domainbooking.BookingCancelled{BookingID: id, User: userName(ctx), At: now().UTC()})
	publish(ctx, h.Notifier, h.Logger, &rec)

	return &CancelBookingResult{BookingID: cmd.BookingID}, nil
}

var _ commands.Handler[CancelBookingCommand, *CancelBookingResult] = (*CancelBookingHandler)(nil)
var _ middleware.ExclusiveCommand = CancelBookingCommand{}
