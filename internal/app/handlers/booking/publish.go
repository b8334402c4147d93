package booking

import (
	"context"
	"log/slog"
	"time"

	"holidaze/internal/app/policies"
	"holidaze/internal/domain/auth"
	domainavailability "holidaze/internal/domain/availability"
	domainbooking "holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
	"holidaze/internal/domain/shared/events"
)

// publish hands recorded events to the notifier. The remote mutation already
// happened, so a delivery failure is logged and not returned.
func publish(ctx context.Context, n policies.Notifier, logger *slog.Logger, rec *events.Recorder) {
	evs := rec.Drain()
	if n == nil || len(evs) == 0 {
		return
	}
	if err := n.Publish(ctx, evs...); err != nil && logger != nil {
		logger.WarnContext(ctx, "booking notification failed", "events", len(evs), "error", err)
	}
}

// rejectRange turns a failed range check into a RangeRejectedError. A
// conflict is also announced as OverbookingPrevented.
func rejectRange(ctx context.Context, n policies.Notifier, logger *slog.Logger, status domainavailability.RangeStatus, venue domainbooking.VenueID, stay daterange.DateRange, at time.Time) error {
	if status == domainavailability.RangeConflict {
		var rec events.Recorder
		rec.Record(domainavailability.OverbookingPrevented{VenueID: venue, Range: stay, At: at})
		publish(ctx, n, logger, &rec)
	}
	return &RangeRejectedError{Status: status}
}

func userName(ctx context.Context) string {
	if s, ok := auth.SessionFromContext(ctx); ok {
		return s.Name
	}
	return ""
}
