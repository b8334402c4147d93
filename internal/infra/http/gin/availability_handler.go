package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"holidaze/internal/app/dto"
	availabilityapp "holidaze/internal/app/handlers/availability"
	"holidaze/internal/app/queries"
	"holidaze/internal/domain/shared/daterange"
)

type AvailabilityHandler struct {
	Queries queries.Bus
	Logger  *slog.Logger
}

func (h AvailabilityHandler) Availability(c *gin.Context) {
	query := availabilityapp.GetAvailabilityQuery{
		VenueID:          c.Param("id"),
		ExcludeBookingID: c.Query("exclude"),
	}
	result, err := queries.Ask[availabilityapp.GetAvailabilityQuery, dto.Availability](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type quoteRequest struct {
	CheckIn          daterange.Date `json:"check_in"`
	CheckOut         daterange.Date `json:"check_out"`
	ExcludeBookingID string         `json:"exclude_booking_id"`
}

func (h AvailabilityHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	query := availabilityapp.QuoteQuery{
		VenueID:          c.Param("id"),
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		ExcludeBookingID: req.ExcludeBookingID,
	}
	result, err := queries.Ask[availabilityapp.QuoteQuery, dto.Quote](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type selectionRequest struct {
	CheckIn          daterange.Date `json:"check_in"`
	CheckOut         daterange.Date `json:"check_out"`
	Event            string         `json:"event" binding:"required"`
	Date             daterange.Date `json:"date"`
	ExcludeBookingID string         `json:"exclude_booking_id"`
}

func (h AvailabilityHandler) Selection(c *gin.Context) {
	var req selectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	query := availabilityapp.SelectionQuery{
		VenueID:          c.Param("id"),
		ExcludeBookingID: req.ExcludeBookingID,
		CheckIn:          req.CheckIn,
		CheckOut:         req.CheckOut,
		Event:            availabilityapp.SelectionEvent(req.Event),
		Date:             req.Date,
	}
	result, err := queries.Ask[availabilityapp.SelectionQuery, dto.Selection](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ AvailabilityHTTP = AvailabilityHandler{}
