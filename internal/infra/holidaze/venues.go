package holidaze

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"holidaze/internal/domain/booking"
)

// DefaultPageSize is used when Venues is called without a limit.
const DefaultPageSize = 100

func (c *Client) Venue(ctx context.Context, id booking.VenueID) (booking.Venue, error) {
	q := url.Values{}
	q.Set("_owner", "true")
	q.Set("_bookings", "true")
	q.Set("_customer", "true")
	var w venueWire
	if err := c.do(ctx, http.MethodGet, "/holidaze/venues/"+url.PathEscape(string(id)), q, nil, &w); err != nil {
		return booking.Venue{}, err
	}
	return w.toDomain()
}

func (c *Client) SearchVenues(ctx context.Context, query string) ([]booking.VenueSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []booking.VenueSummary{}, nil
	}
	var ws []venueWire
	if err := c.do(ctx, http.MethodGet, "/holidaze/venues/search", url.Values{"q": {query}}, nil, &ws); err != nil {
		return nil, err
	}
	return summaries(ws), nil
}

// Venues lists one page of venues, newest first. Pages start at 1.
func (c *Client) Venues(ctx context.Context, limit, page int) ([]booking.VenueSummary, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page <= 0 {
		page = 1
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("page", strconv.Itoa(page))
	q.Set("sort", "created")
	q.Set("sortOrder", "desc")
	var ws []venueWire
	if err := c.do(ctx, http.MethodGet, "/holidaze/venues", q, nil, &ws); err != nil {
		return nil, err
	}
	return summaries(ws), nil
}

func summaries(ws []venueWire) []booking.VenueSummary {
	out := make([]booking.VenueSummary, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.summary())
	}
	return out
}
