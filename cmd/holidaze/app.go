package main

import (
	"log/slog"
	"time"

	"holidaze/internal/app/commands"
	authapp "holidaze/internal/app/handlers/auth"
	availabilityapp "holidaze/internal/app/handlers/availability"
	bookingapp "holidaze/internal/app/handlers/booking"
	favoritesapp "holidaze/internal/app/handlers/favorites"
	meapp "holidaze/internal/app/handlers/me"
	venuesapp "holidaze/internal/app/handlers/venues"
	"holidaze/internal/app/middleware"
	"holidaze/internal/app/policies"
	"holidaze/internal/app/queries"
	domainavailability "holidaze/internal/domain/availability"
	ginserver "holidaze/internal/infra/http/gin"
)

type appDeps struct {
	Venues   policies.VenueAPI
	Bookings policies.BookingAPI
	Auth     policies.AuthAPI
	Backends *backends
	Location *time.Location
	TTL      time.Duration
	Logger   *slog.Logger
	Now      func() time.Time
}

type application struct {
	handlers ginserver.Handlers
	commands commands.Bus
	queries  queries.Bus
}

func buildApplication(d appDeps) application {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	engine := domainavailability.Engine{Location: d.Location, Now: now}
	b := d.Backends

	commandBus := commands.NewInMemoryBus()
	commands.RegisterHandler(commandBus, &bookingapp.CreateBookingHandler{
		Venues: d.Venues, Bookings: d.Bookings, Notifier: b.notifier, Engine: engine, Logger: d.Logger, Now: now,
	})
	commands.RegisterHandler(commandBus, &bookingapp.UpdateBookingHandler{
		Venues: d.Venues, Bookings: d.Bookings, Notifier: b.notifier, Engine: engine, Logger: d.Logger, Now: now,
	})
	commands.RegisterHandler(commandBus, &bookingapp.CancelBookingHandler{
		Bookings: d.Bookings, Notifier: b.notifier, Logger: d.Logger, Now: now,
	})
	commands.RegisterHandler(commandBus, &favoritesapp.ToggleHandler{Repo: b.favorites})
	commands.RegisterHandler(commandBus, &authapp.LoginHandler{API: d.Auth, Sessions: b.sessions, TTL: d.TTL, Now: now})
	commands.RegisterHandler(commandBus, &authapp.LogoutHandler{Sessions: b.sessions})

	queryBus := queries.NewInMemoryBus()
	queries.RegisterHandler(queryBus, &availabilityapp.GetAvailabilityHandler{Venues: d.Venues, Engine: engine})
	queries.RegisterHandler(queryBus, &availabilityapp.QuoteHandler{Venues: d.Venues, Engine: engine})
	queries.RegisterHandler(queryBus, &availabilityapp.SelectionHandler{Venues: d.Venues, Engine: engine})
	queries.RegisterHandler(queryBus, &meapp.ListBookingsHandler{Bookings: d.Bookings, Engine: engine})
	queries.RegisterHandler(queryBus, &favoritesapp.ListHandler{Repo: b.favorites})
	queries.RegisterHandler(queryBus, &venuesapp.SearchHandler{Venues: d.Venues})
	queries.RegisterHandler(queryBus, &venuesapp.ListHandler{Venues: d.Venues})
	queries.RegisterHandler(queryBus, &venuesapp.HostBookingsHandler{Venues: d.Venues, Engine: engine})

	if d.Logger != nil {
		d.Logger.Debug("handlers registered", "commands", commandBus.Keys(), "queries", queryBus.Keys())
	}

	cmds := middleware.ChainCommands(
		commandBus,
		middleware.Logging(d.Logger),
		middleware.RequireSession(),
		middleware.SingleFlight(middleware.NewInFlight()),
		middleware.Idempotency(b.idempotency, nil),
	)
	qs := middleware.ChainQueries(
		queryBus,
		middleware.QueryLogging(d.Logger),
		middleware.QueryRequireSession(),
	)

	return application{
		commands: cmds,
		queries:  qs,
		handlers: ginserver.Handlers{
			Availability:      ginserver.AvailabilityHandler{Queries: qs, Logger: d.Logger},
			Booking:           ginserver.BookingHandler{Commands: cmds, Logger: d.Logger},
			Me:                ginserver.MeHandler{Queries: qs, Commands: cmds, Logger: d.Logger},
			Auth:              ginserver.AuthHandler{Commands: cmds, Logger: d.Logger},
			Venue:             ginserver.VenueHandler{Queries: qs, Logger: d.Logger},
			SessionMiddleware: ginserver.SessionMiddleware{Sessions: b.sessions, Logger: d.Logger, Now: now}.Handle,
		},
	}
}
