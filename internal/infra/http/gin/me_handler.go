package ginserver

import (
	"log/slog"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"holidaze/internal/app/commands"
	"holidaze/internal/app/dto"
	favoritesapp "holidaze/internal/app/handlers/favorites"
	meapp "holidaze/internal/app/handlers/me"
	"holidaze/internal/app/queries"
)

type MeHandler struct {
	Queries  queries.Bus
	Commands commands.Bus
	Logger   *slog.Logger
}

func (h MeHandler) ListBookings(c *gin.Context) {
	query := meapp.ListBookingsQuery{Tense: meapp.Tense(c.Query("tense"))}
	result, err := queries.Ask[meapp.ListBookingsQuery, dto.BookingList](c.Request.Context(), h.Queries, query)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h MeHandler) Favorites(c *gin.Context) {
	result, err := queries.Ask[favoritesapp.ListQuery, dto.Favorites](c.Request.Context(), h.Queries, favoritesapp.ListQuery{})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h MeHandler) ToggleFavorite(c *gin.Context) {
	cmd := favoritesapp.ToggleCommand{VenueID: c.Param("venueId")}
	result, err := commands.Dispatch[favoritesapp.ToggleCommand, *favoritesapp.ToggleResult](c.Request.Context(), h.Commands, cmd)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

var _ MeHTTP = MeHandler{}
