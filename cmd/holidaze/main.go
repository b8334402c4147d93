package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"holidaze/internal/infra/config"
	"holidaze/internal/infra/holidaze"
	ginserver "holidaze/internal/infra/http/gin"
	"holidaze/internal/infra/obs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		obs.NewLogger("prod", "error").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env, cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("invalid calendar time zone", "error", err)
		os.Exit(1)
	}

	api, err := holidaze.New(holidaze.Options{
		BaseURL: cfg.APIBase,
		APIKey:  cfg.APIKey,
		Timeout: cfg.APITimeout,
		RPS:     cfg.APIRPS,
		Burst:   cfg.APIBurst,
		Logger:  logger,
	})
	if err != nil {
		logger.Error("holidaze client", "error", err)
		os.Exit(1)
	}

	backends, err := connectBackends(ctx, cfg, logger)
	if err != nil {
		logger.Error("backend connection failed", "error", err)
		os.Exit(1)
	}
	defer backends.close(logger)
	backends.checks["holidaze_api"] = api.Ping

	app := buildApplication(appDeps{
		Venues:   api,
		Bookings: api,
		Auth:     api,
		Backends: backends,
		Location: loc,
		TTL:      cfg.SessionTTL,
		Logger:   logger,
	})
	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Checks:  backends.checks,
		Timeout: 2 * time.Second,
	}, app.handlers)

	for _, run := range backends.workers {
		go func(run func(context.Context) error) {
			if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("background worker stopped", "error", err)
			}
		}(run)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr, "api_base", cfg.APIBase, "calendar_tz", loc.String())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}
