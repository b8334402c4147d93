package booking

import (
	"context"
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

type CreateBookingCommand struct {
	VenueID         string
	CheckIn         daterange.Date
	CheckOut        daterange.Date
	Guests          int
	IdempotencyKeyV string
}

func (c CreateBookingCommand) Key() string            { return "booking.create" }
func (c CreateBookingCommand) IdempotencyKey() string { return c.IdempotencyKeyV }
func (c CreateBookingCommand) ExclusiveKey() string   { return c.VenueID }
func (c CreateBookingCommand) RequiresSession() bool  { return true }

func (c CreateBookingCommand) Replay(payload []byte) (any, error) {
	return middleware.ReplayJSON[CreateBookingResult](payload)
}

type CreateBookingResult struct {
	Booking dto.Booking `json:"booking"`
}

type CreateBookingHandler struct {
	Venues   policies.VenueAPI
	Bookings policies.BookingAPI
	Notifier policies.Notifier
	Engine   domainavailability.Engine
	Logger   *slog.Logger
	Now      func() time.Time
}

func (h *CreateBookingHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*CreateBookingResult, error) {
	req := domainbooking.CreateRequest{
		DateFrom: cmd.CheckIn,
		DateTo:   cmd.CheckOut,
		Guests:   cmd.Guests,
		VenueID:  domainbooking.VenueID(cmd.VenueID),
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	venue, err := h.Venues.Venue(ctx, req.VenueID)
	if err != nil {
		return nil, err
	}
	if err := venue.ValidateGuests(req.Guests); err != nil {
		return nil, err
	}

	stay := daterange.DateRange{CheckIn: req.DateFrom, CheckOut: req.DateTo}
	quote := h.Engine.Quote(venue, req.DateFrom, req.DateTo, "")
	if !quote.Status.Submittable() {
		return nil, rejectRange(ctx, h.Notifier, h.Logger, quote.Status, venue.ID, stay, h.now())
	}

	created, err := h.Bookings.CreateBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	var rec events.Recorder
	rec.Record(domainbooking.BookingCreated{
		BookingID: created.ID,
		VenueID:   venue.ID,
		User:      userName(ctx),
		Range:     stay,
		Guests:    req.Guests,
		Nights:    quote.Nights,
		Total:     quote.Total,
		At:        h.now(),
	})
	publish(ctx, h.Notifier, h.Logger, &rec)

	out := dto.MapBooking(created, venue.Price)
	if created.DateFrom.IsZero() {
		// the API echoed no dates; report what was submitted
		out.DateFrom, out.DateTo = req.DateFrom, req.DateTo
		out.Nights, out.Total = quote.Nights, quote.Total
	}
	return &CreateBookingResult{Booking: out}, nil
}

func (h *CreateBookingHandler) now() time.Time {
	if h.Now != nil {
		return h.Now().UTC()
	}
	return time.Now().UTC()
}

var _ commands.Handler[CreateBookingCommand, *CreateBookingResult] = (*CreateBookingHandler)(nil)
var _ middleware.IdempotentCommand = CreateBookingCommand{}
var _ middleware.ExclusiveCommand = CreateBookingCommand{}
