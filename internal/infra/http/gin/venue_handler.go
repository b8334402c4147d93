package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"holidaze/internal/app/dto"
	venuesapp "holidaze/internal/app/handlers/venues"
	"holidaze/internal/app/queries"
)

type VenueHandler struct {
	Queries queries.Bus
	Logger  *slog.Logger
}

func (h VenueHandler) Search(c *gin.Context) {
	result, err := queries.Ask[venuesapp.SearchQuery, []dto.VenueSummary](c.Request.Context(), h.Queries, venuesapp.SearchQuery{Q: c.Query("q")})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": result})
}

type listVenuesParams struct {
	Limit int `form:"limit" binding:"omitempty,min=1"`
	Page  int `form:"page" binding:"omitempty,min=1"`
}

func (h VenueHandler) List(c *gin.Context) {
	var params listVenuesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	query := venuesapp.ListQuery{Limit: params.Limit, Page: params.Page}
	result, err := queries.Ask[venuesapp.ListQuery, []dto.VenueSummary](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": result, "page": max(params.Page, 1)})
}

// HostBookings shows the venue owner every booking at the venue.
func (h VenueHandler) HostBookings(c *gin.Context) {
	query := venuesapp.HostBookingsQuery{VenueID: c.Param("id")}
	result, err := queries.Ask[venuesapp.HostBookingsQuery, dto.HostBookings](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ VenueHTTP = VenueHandler{}
