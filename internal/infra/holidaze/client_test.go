package holidaze_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/internal/domain/auth"
	"holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
	"holidaze/internal/infra/holidaze"
)

func newClient(t *testing.T, handler http.HandlerFunc) *holidaze.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := holidaze.New(holidaze.Options{BaseURL: srv.URL + "/", APIKey: "key-123"})
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestVenue(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/holidaze/venues/v1", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("_owner"))
		assert.Equal(t, "true", r.URL.Query().Get("_bookings"))
		assert.Equal(t, "true", r.URL.Query().Get("_customer"))
		assert.Equal(t, "key-123", r.Header.Get("X-Noroff-API-Key"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"data":{
			"id":"v1","name":"Fjord cabin","price":150,"maxGuests":4,
			"owner":{"name":"kari","email":"kari@stud.noroff.no"},
			"bookings":[{"id":"b1","dateFrom":"2025-06-10T00:00:00.000Z","dateTo":"2025-06-15T00:00:00.000Z","guests":2,
				"customer":{"name":"ola","email":"ola@stud.noroff.no"}}]
		},"meta":{}}`)
	})
	ctx := auth.ContextWithSession(context.Background(), &auth.Session{Token: "tok", Name: "ola"})

	v, err := c.Venue(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, booking.VenueID("v1"), v.ID)
	assert.Equal(t, 150.0, v.Price)
	assert.Equal(t, 4, v.MaxGuests)
	require.NotNil(t, v.Owner)
	assert.Equal(t, "kari", v.Owner.Name)
	require.Len(t, v.Bookings, 1)
	assert.Equal(t, "2025-06-10", v.Bookings[0].DateFrom.String())
	assert.Equal(t, "2025-06-15", v.Bookings[0].DateTo.String())
	require.NotNil(t, v.Bookings[0].Customer)
	assert.Equal(t, "ola", v.Bookings[0].Customer.Name)
	assert.True(t, v.OwnedBy("Kari"))
	assert.False(t, v.OwnedBy("ola"))
}

func TestVenue_AnonymousHasNoAuthorization(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"data":{"id":"v1","price":10,"bookings":[]}}`)
	})
	v, err := c.Venue(context.Background(), "v1")
	require.NoError(t, err)
	assert.Empty(t, v.Bookings)
}

func TestCreateBooking_SendsMidnightUTC(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/holidaze/bookings", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"dateFrom": "2025-06-16T00:00:00.000Z",
			"dateTo":   "2025-06-18T00:00:00.000Z",
			"guests":   float64(2),
			"venueId":  "v1",
		}, body)
		writeJSON(w, http.StatusCreated, `{"data":{"id":"new","dateFrom":"2025-06-16T00:00:00.000Z","dateTo":"2025-06-18T00:00:00.000Z","guests":2}}`)
	})
	r, err := c.CreateBooking(context.Background(), booking.CreateRequest{
		DateFrom: daterange.MustParse("2025-06-16"),
		DateTo:   daterange.MustParse("2025-06-18"),
		Guests:   2,
		VenueID:  "v1",
	})
	require.NoError(t, err)
	assert.Equal(t, booking.ID("new"), r.ID)
}

func TestUpdateBooking_OmitsAbsentFields(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/holidaze/bookings/b1", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"guests":3}`, string(raw))
		writeJSON(w, http.StatusOK, `{"data":{"id":"b1","dateFrom":"2025-06-10T00:00:00.000Z","dateTo":"2025-06-15T00:00:00.000Z","guests":3}}`)
	})
	guests := 3
	r, err := c.UpdateBooking(context.Background(), "b1", booking.UpdateRequest{Guests: &guests})
	require.NoError(t, err)
	assert.Equal(t, 3, r.Guests)
}

func TestDeleteBooking_NoContent(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	assert.NoError(t, c.DeleteBooking(context.Background(), "b1"))
}

func TestProfileBookings(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/holidaze/profiles/ola/bookings", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("_venue"))
		writeJSON(w, http.StatusOK, `{"data":[{"id":"b1","dateFrom":"2025-06-10T00:00:00.000Z","dateTo":"2025-06-12T00:00:00.000Z","guests":1,"venue":{"id":"v1","name":"Cabin","price":90,"maxGuests":2}}]}`)
	})
	rs, err := c.ProfileBookings(context.Background(), "ola")
	require.NoError(t, err)
	require.Len(t, rs, 1)
	require.NotNil(t, rs[0].Venue)
	assert.Equal(t, 90.0, rs[0].Venue.Price)
}

func TestSearchVenues(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/holidaze/venues/search", r.URL.Path)
		assert.Equal(t, "fjord view", r.URL.Query().Get("q"))
		writeJSON(w, http.StatusOK, `{"data":[{"id":"v1","name":"Fjord view","price":120,"maxGuests":2,"rating":4.5}]}`)
	})
	found, err := c.SearchVenues(context.Background(), " fjord view ")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, 4.5, found[0].Rating)

	empty, err := c.SearchVenues(context.Background(), "  ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestVenues_Paging(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/holidaze/venues", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "100", q.Get("limit"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "created", q.Get("sort"))
		assert.Equal(t, "desc", q.Get("sortOrder"))
		writeJSON(w, http.StatusOK, `{"data":[{"id":"v2","name":"Loft","price":90},{"id":"v1","name":"Cabin","price":150}],"meta":{"currentPage":1}}`)
	})
	got, err := c.Venues(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, booking.VenueID("v2"), got[0].ID)
	assert.Equal(t, 150.0, got[1].Price)
}

func TestPing_WrapsErrors(t *testing.T) {
	c, err := holidaze.New(holidaze.Options{BaseURL: "http://127.0.0.1:1"})
	require.NoError(t, err)

	var missing context.Context
	err = c.Ping(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holidaze: ping")

	err = c.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holidaze: ping")
}

func TestLogin(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"data":{"name":"ola","email":"ola@stud.noroff.no","accessToken":"tok"}}`)
	})
	res, err := c.Login(context.Background(), "ola@stud.noroff.no", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.AccessToken)
	assert.True(t, res.ExpiresAt.IsZero())
}

func TestLogin_ReadsTokenExpiry(t *testing.T) {
	exp := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ola",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("not-the-api-secret"))
	require.NoError(t, err)

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":{"name":"ola","accessToken":"`+token+`"}}`)
	})
	res, err := c.Login(context.Background(), "ola@stud.noroff.no", "pw")
	require.NoError(t, err)
	assert.True(t, exp.Equal(res.ExpiresAt))
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name        string
		status      int
		contentType string
		body        string
		wantMessage string
	}{
		{name: "errors array wins", status: 400, contentType: "application/json", body: `{"errors":[{"message":"Venue is fully booked"}],"message":"other"}`, wantMessage: "Venue is fully booked"},
		{name: "top-level message", status: 409, contentType: "application/json", body: `{"message":"Conflict"}`, wantMessage: "Conflict"},
		{name: "401 fallback", status: 401, contentType: "application/json", body: `{}`, wantMessage: "You need to log in to do that."},
		{name: "403 fallback", status: 403, contentType: "application/json", body: ``, wantMessage: "You don't have permission for this action."},
		{name: "404 fallback", status: 404, contentType: "application/json", body: `{"errors":[]}`, wantMessage: "Not found."},
		{name: "422 fallback", status: 422, contentType: "application/json", body: `{}`, wantMessage: "Validation error. Please check your input."},
		{name: "plain text body", status: 500, contentType: "text/plain", body: "upstream exploded", wantMessage: "upstream exploded"},
		{name: "default fallback", status: 502, contentType: "text/plain", body: "", wantMessage: "Something went wrong. Please try again."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(tc.status)
				_, _ = io.WriteString(w, tc.body)
			})
			_, err := c.Venue(context.Background(), "v1")
			var apiErr *holidaze.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.wantMessage, apiErr.Message)
			assert.Equal(t, tc.status, holidaze.StatusOf(err))
		})
	}
}

func TestNew_RequiresBaseURL(t *testing.T) {
	_, err := holidaze.New(holidaze.Options{})
	assert.Error(t, err)
}
