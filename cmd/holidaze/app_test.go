package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"holidaze/internal/app/policies"
	"holidaze/internal/app/policies/mock"
	"holidaze/internal/domain/booking"
	"holidaze/internal/domain/shared/daterange"
	"holidaze/internal/infra/config"
	ginserver "holidaze/internal/infra/http/gin"
	"holidaze/internal/infra/obs"
)

type appSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	venues   *mock.MockVenueAPI
	bookings *mock.MockBookingAPI
	auth     *mock.MockAuthAPI
	router   *gin.Engine
	today    daterange.Date
}

func TestApplication(t *testing.T) {
	suite.Run(t, new(appSuite))
}

func (s *appSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.venues = mock.NewMockVenueAPI(s.ctrl)
	s.bookings = mock.NewMockBookingAPI(s.ctrl)
	s.auth = mock.NewMockAuthAPI(s.ctrl)
	s.today = daterange.Today(time.Now(), time.UTC)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := buildApplication(appDeps{
		Venues:   s.venues,
		Bookings: s.bookings,
		Auth:     s.auth,
		Backends: memoryBackends(time.Hour, logger),
		Location: time.UTC,
		TTL:      time.Hour,
		Logger:   logger,
	})
	s.router = ginserver.NewRouter(config.Config{Env: "test"}, obs.Middleware{}, obs.HealthHandlers{}, app.handlers)
}

func (s *appSuite) day(offset int) string {
	return s.today.AddDays(offset).String()
}

func (s *appSuite) venue() booking.Venue {
	return booking.Venue{
		ID:        "v1",
		Name:      "Fjord Cabin",
		Price:     1200,
		MaxGuests: 4,
		Bookings: []booking.Reservation{
			{ID: "b-existing", DateFrom: s.today.AddDays(10), DateTo: s.today.AddDays(12), Guests: 2},
		},
	}
}

func (s *appSuite) do(method, path, body, token string, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *appSuite) login() string {
	s.auth.EXPECT().Login(gomock.Any(), "kari@stud.noroff.no", "secret").
		Return(policies.LoginResult{Name: "Kari", Email: "kari@stud.noroff.no", AccessToken: "tok-kari"}, nil)

	rec := s.do(http.MethodPost, "/api/v1/auth/login", `{"email":"kari@stud.noroff.no","password":"secret"}`, "")
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Token string `json:"token"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Token
}

func (s *appSuite) bookingBody(from, to int) string {
	return `{"venue_id":"v1","check_in":"` + s.day(from) + `","check_out":"` + s.day(to) + `","guests":2}`
}

func (s *appSuite) TestAvailabilityIsPublic() {
	s.venues.EXPECT().Venue(gomock.Any(), booking.VenueID("v1")).Return(s.venue(), nil)

	rec := s.do(http.MethodGet, "/api/v1/venues/v1/availability", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		MinDate      string   `json:"min_date"`
		BlockedDates []string `json:"blocked_dates"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(s.day(0), body.MinDate)
	s.Equal([]string{s.day(10), s.day(11), s.day(12)}, body.BlockedDates)
}

func (s *appSuite) TestCreateBookingRequiresLogin() {
	rec := s.do(http.MethodPost, "/api/v1/bookings", s.bookingBody(20, 22), "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/bookings", s.bookingBody(20, 22), "forged")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *appSuite) TestCreateBookingConflict() {
	token := s.login()
	s.venues.EXPECT().Venue(gomock.Any(), booking.VenueID("v1")).Return(s.venue(), nil)

	rec := s.do(http.MethodPost, "/api/v1/bookings", s.bookingBody(11, 13), token)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.JSONEq(`{"error":{"status":"conflict","message":"Selected dates overlap an existing booking."}}`, rec.Body.String())
}

func (s *appSuite) TestCreateBookingRejectsReusedKeyForOtherDates() {
	token := s.login()
	s.venues.EXPECT().Venue(gomock.Any(), booking.VenueID("v1")).Return(s.venue(), nil)
	s.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		Return(booking.Reservation{ID: "b-new"}, nil).Times(1)

	first := s.do(http.MethodPost, "/api/v1/bookings", s.bookingBody(20, 22), token, "Idempotency-Key", "k-2")
	s.Require().Equal(http.StatusCreated, first.Code, first.Body.String())
	second := s.do(http.MethodPost, "/api/v1/bookings", s.bookingBody(30, 32), token, "Idempotency-Key", "k-2")
	s.Equal(http.StatusUnprocessableEntity, second.Code)
}

func (s *appSuite) TestVenueListing() {
	s.venues.EXPECT().Venues(gomock.Any(), 100, 2).
		Return([]booking.VenueSummary{{ID: "v1", Name: "Fjord Cabin", Price: 1200, MaxGuests: 4}}, nil)

	rec := s.do(http.MethodGet, "/api/v1/venues?page=2", "", "")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"page":2,"venues":[{"id":"v1","name":"Fjord Cabin","price":1200,"max_guests":4}]}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/venues?limit=abc", "", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *appSuite) TestHostSeesVenueBookings() {
	token := s.login()
	venue := s.venue()
	venue.Owner = &booking.Owner{Name: "kari"}
	venue.Bookings[0].Customer = &booking.Owner{Name: "ola"}
	s.venues.EXPECT().Venue(gomock.Any(), booking.VenueID("v1")).Return(venue, nil)

	rec := s.do(http.MethodGet, "/api/v1/venues/v1/bookings", "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/venues/v1/bookings", "", token)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var body struct {
		Bookings []struct {
			ID       string  `json:"id"`
			Nights   int     `json:"nights"`
			Total    float64 `json:"total"`
			Customer string  `json:"customer"`
		} `json:"bookings"`
		Revenue float64 `json:"revenue"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Require().Len(body.Bookings, 1)
	s.Equal("b-existing", body.Bookings[0].ID)
	s.Equal(2, body.Bookings[0].Nights)
	s.InDelta(2400, body.Bookings[0].Total, 0.001)
	s.Equal("ola", body.Bookings[0].Customer)
	s.InDelta(2400, body.Revenue, 0.001)

	venue.Owner = &booking.Owner{Name: "someone-else"}
	s.venues.EXPECT().Venue(gomock.Any(), booking.VenueID("v1")).Return(venue, nil)
	rec = s.do(http.MethodGet, "/api/v1/venues/v1/bookings", "", token)
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *appSuite) TestCreateBookingReplaysIdempotencyKey() {
	token := s.login()
	s.venues.EXPECT().Venue(gomock.Any(), booking.VenueID("v1")).Return(s.venue(), nil)
	s.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req booking.CreateRequest) (booking.Reservation, error) {
			return booking.Reservation{ID: "b-new", DateFrom: req.DateFrom, DateTo: req.DateTo, Guests: req.Guests}, nil
		}).Times(1)

	first := s.do(http.MethodPost, "/api/v1/bookings", s.bookingBody(20, 22), token, "Idempotency-Key", "k-1")
	s.Require().Equal(http.StatusCreated, first.Code, first.Body.String())
	second := s.do(http.MethodPost, "/api/v1/bookings", s.bookingBody(20, 22), token, "Idempotency-Key", "k-1")
	s.Require().Equal(http.StatusCreated, second.Code)
	s.JSONEq(first.Body.String(), second.Body.String())

	var body struct {
		Booking struct {
			ID     string  `json:"id"`
			Nights int     `json:"nights"`
			Total  float64 `json:"total"`
		} `json:"booking"`
	}
	s.Require().NoError(json.Unmarshal(first.Body.Bytes(), &body))
	s.Equal("b-new", body.Booking.ID)
	s.Equal(2, body.Booking.Nights)
	s.InDelta(2400, body.Booking.Total, 0.001)
}

func (s *appSuite) TestFavoritesFollowTheSession() {
	token := s.login()

	rec := s.do(http.MethodPost, "/api/v1/me/favorites/v1/toggle", "", token)
	s.Require().Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/me/favorites", "", token)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"owner":"kari","venue_ids":["v1"]}`, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/me/favorites", "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
	rec = s.do(http.MethodPost, "/api/v1/me/favorites/v1/toggle", "", "")
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *appSuite) TestLogoutEndsSession() {
	token := s.login()
	s.bookings.EXPECT().ProfileBookings(gomock.Any(), "Kari").Return(nil, nil)

	rec := s.do(http.MethodGet, "/api/v1/me/bookings", "", token)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"upcoming":[],"previous":[]}`, rec.Body.String())

	rec = s.do(http.MethodPost, "/api/v1/auth/logout", "", token)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/me/bookings", "", token)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
