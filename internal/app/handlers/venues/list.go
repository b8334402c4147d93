package venues

import (
	"context"

	"holidaze/internal/app/dto"
	"holidaze/internal/app/policies"
	"holidaze/internal/app/queries"
)

// MaxPageSize caps the page size a client may ask for.
const MaxPageSize = 100

// ListQuery pages through all venues for the home page.
type ListQuery struct {
	Limit int
	Page  int
}

func (ListQuery) Key() string { return "venues.list" }

type ListHandler struct {
	Venues policies.VenueAPI
}

func (h *ListHandler) Handle(ctx context.Context, q ListQuery) ([]dto.VenueSummary, error) {
	limit := q.Limit
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	found, err := h.Venues.Venues(ctx, limit, max(q.Page, 1))
	if err != nil {
		return nil, err
	}
	return mapSummaries(found), nil
}

var _ queries.Handler[ListQuery, []dto.VenueSummary] = (*ListHandler)(nil)
