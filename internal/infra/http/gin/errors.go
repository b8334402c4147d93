package ginserver

import (
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"
	gin "github.com/gin-gonic/gin"

	authapp "holidaze/internal/app/handlers/auth"
	availabilityapp "holidaze/internal/app/handlers/availability"
	bookingapp "holidaze/internal/app/handlers/booking"
	meapp "holidaze/internal/app/handlers/me"
	venuesapp "holidaze/internal/app/handlers/venues"
	"holidaze/internal/app/middleware"
	domainavailability "holidaze/internal/domain/availability"
	domainbooking "holidaze/internal/domain/booking"
	domainfavorites "holidaze/internal/domain/favorites"
	"holidaze/internal/domain/shared/daterange"
	"holidaze/internal/infra/holidaze"
)

var badRequestErrors = []error{
	domainbooking.ErrInvalidGuests,
	domainbooking.ErrTooManyGuests,
	domainbooking.ErrVenueRequired,
	domainbooking.ErrEmptyUpdate,
	domainfavorites.ErrVenueRequired,
	daterange.ErrInvalidDate,
	availabilityapp.ErrVenueRequired,
	availabilityapp.ErrUnknownEvent,
	bookingapp.ErrBookingRequired,
	meapp.ErrUnknownTense,
	venuesapp.ErrVenueRequired,
	authapp.ErrCredentialsRequired,
}

func rangeMessage(status domainavailability.RangeStatus) string {
	if msg := status.Message(); msg != "" {
		return msg
	}
	switch status {
	case domainavailability.RangeIncomplete:
		return "Select both a check-in and a check-out date."
	case domainavailability.RangeInvalidOrder:
		return "Check-out must be after check-in."
	case domainavailability.RangePastDate:
		return "Check-in cannot be in the past."
	default:
		return "Selected dates are not available."
	}
}

// writeError maps application errors onto HTTP responses. Anything not
// recognised is logged and reported as a 500 without its details.
func writeError(c *gin.Context, logger *slog.Logger, err error) {
	var rejected *bookingapp.RangeRejectedError
	if errors.As(err, &rejected) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{
			"status":  rejected.Status,
			"message": rangeMessage(rejected.Status),
		}})
		return
	}
	var apiErr *holidaze.APIError
	if errors.As(err, &apiErr) {
		body := gin.H{"message": apiErr.Message}
		if len(apiErr.Details) > 0 {
			body["details"] = apiErr.Details
		}
		c.JSON(apiErr.Status, gin.H{"error": body})
		return
	}
	switch {
	case errors.Is(err, middleware.ErrUnauthenticated):
		respondError(c, http.StatusUnauthorized, "You need to log in to do that.")
		return
	case errors.Is(err, middleware.ErrBusy):
		respondError(c, http.StatusConflict, "A matching request is already in progress.")
		return
	case errors.Is(err, middleware.ErrIdempotencyMismatch):
		respondError(c, http.StatusUnprocessableEntity, "This Idempotency-Key was already used for a different request.")
		return
	case errors.Is(err, domainbooking.ErrNotVenueOwner):
		respondError(c, http.StatusForbidden, "Only the venue owner can see its bookings.")
		return
	case errors.Is(err, domainbooking.ErrBookingNotFound):
		respondError(c, http.StatusNotFound, "Booking not found.")
		return
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if logger != nil {
		logger.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
	}
	respondError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": gin.H{"message": message}})
}
