package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"holidaze/internal/infra/config"
	"holidaze/internal/infra/obs"
)

type AvailabilityHTTP interface {
	Availability(c *gin.Context)
	Quote(c *gin.Context)
	Selection(c *gin.Context)
}

type BookingHTTP interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Cancel(c *gin.Context)
}

type MeHTTP interface {
	ListBookings(c *gin.Context)
	Favorites(c *gin.Context)
	ToggleFavorite(c *gin.Context)
}

type AuthHTTP interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
}

type VenueHTTP interface {
	List(c *gin.Context)
	Search(c *gin.Context)
	HostBookings(c *gin.Context)
}

type Handlers struct {
	Availability      AvailabilityHTTP
	Booking           BookingHTTP
	Me                MeHTTP
	Auth              AuthHTTP
	Venue             VenueHTTP
	SessionMiddleware gin.HandlerFunc
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(cfg, obsMW, health, h),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// NewRouter builds the gin engine; exposed separately for httptest.
func NewRouter(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *gin.Engine {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))
	if h.SessionMiddleware != nil {
		router.Use(h.SessionMiddleware)
	}

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)
	if cfg.SwaggerEnabled {
		registerSwaggerRoutes(router)
	}

	api := router.Group("/api/v1")
	if h.Auth != nil {
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/logout", h.Auth.Logout)
	}
	if h.Venue != nil {
		api.GET("/venues", h.Venue.List)
		api.GET("/venues/search", h.Venue.Search)
		api.GET("/venues/:id/bookings", h.Venue.HostBookings)
	}
	if h.Availability != nil {
		api.GET("/venues/:id/availability", h.Availability.Availability)
		api.POST("/venues/:id/quote", h.Availability.Quote)
		api.POST("/venues/:id/selection", h.Availability.Selection)
	}
	if h.Booking != nil {
		api.POST("/bookings", h.Booking.Create)
		api.PUT("/bookings/:id", h.Booking.Update)
		api.DELETE("/bookings/:id", h.Booking.Cancel)
	}
	if h.Me != nil {
		meGroup := api.Group("/me")
		meGroup.GET("/bookings", h.Me.ListBookings)
		meGroup.GET("/favorites", h.Me.Favorites)
		meGroup.POST("/favorites/:venueId/toggle", h.Me.ToggleFavorite)
	}
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Idempotency-Key"},
		ExposeHeaders: []string{"Content-Length", "Content-Type", obs.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
