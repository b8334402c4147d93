package venues

import (
	"context"
	"strings"

	"holidaze/internal/app/dto"
	"holidaze/internal/app/policies"
	"holidaze/internal/app/queries"
	"holidaze/internal/domain/booking"
)

type SearchQuery struct {
	Q string
}

func (SearchQuery) Key() string { return "venues.search" }

type SearchHandler struct {
	Venues policies.VenueAPI
}

func (h *SearchHandler) Handle(ctx context.Context, q SearchQuery) ([]dto.VenueSummary, error) {
	term := strings.TrimSpace(q.Q)
	if term == "" {
		return []dto.VenueSummary{}, nil
	}
	found, err := h.Venues.SearchVenues(ctx, term)
	if err != nil {
		return nil, err
	}
	return mapSummaries(found), nil
}

func mapSummaries(vs []booking.VenueSummary) []dto.VenueSummary {
	out := make([]dto.VenueSummary, 0, len(vs))
	for _, v := range vs {
		out = append(out, dto.MapVenueSummary(v))
	}
	return out
}

var _ queries.Handler[SearchQuery, []dto.VenueSummary] = (*SearchHandler)(nil)
