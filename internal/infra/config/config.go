package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config aggregates application configuration loaded from environment variables.
// Optional backends (Mongo, Redis, Kafka) are disabled when their address is empty
// and the in-memory or log-based fallback is used instead.
type Config struct {
	Env      string `envconfig:"APP_ENV" default:"dev"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	APIBase    string        `envconfig:"HOLIDAZE_API_BASE" default:"https://v2.api.noroff.dev"`
	APIKey     string        `envconfig:"HOLIDAZE_API_KEY"`
	APITimeout time.Duration `envconfig:"HOLIDAZE_TIMEOUT" default:"10s"`
	APIRPS     float64       `envconfig:"HOLIDAZE_RPS" default:"10"`
	APIBurst   int           `envconfig:"HOLIDAZE_BURST" default:"20"`

	CalendarTZ     string        `envconfig:"CALENDAR_TZ" default:"Europe/Oslo"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	IdempotencyTTL time.Duration `envconfig:"IDEMP_TTL" default:"24h"`

	MongoURI string `envconfig:"MONGO_URI"`
	MongoDB  string `envconfig:"MONGO_DB" default:"holidaze"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	KafkaBrokers     []string      `envconfig:"KAFKA_BROKERS"`
	KafkaTopicPrefix string        `envconfig:"KAFKA_TOPIC_PREFIX"`
	KafkaClientID    string        `envconfig:"KAFKA_CLIENT_ID" default:"holidaze"`
	OutboxInterval   time.Duration `envconfig:"OUTBOX_INTERVAL" default:"500ms"`

	CORSAllowOrigins []string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	SwaggerEnabled   bool     `envconfig:"SWAGGER_ENABLED" default:"true"`
}

// Load parses configuration from the current environment. Files named in
// envFiles (default ".env") are read first when present; variables already
// set in the environment win.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env config: %w", err)
	}
	cfg.APIBase = strings.TrimRight(strings.TrimSpace(cfg.APIBase), "/")
	if cfg.APIBase == "" {
		return Config{}, fmt.Errorf("HOLIDAZE_API_BASE is required")
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive")
	}
	if cfg.APIRPS <= 0 {
		return Config{}, fmt.Errorf("HOLIDAZE_RPS must be positive")
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location is the time zone the booking calendar is shown in.
func (c Config) Location() (*time.Location, error) {
	if c.CalendarTZ == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.CalendarTZ)
	if err != nil {
		return nil, fmt.Errorf("invalid CALENDAR_TZ %q: %w", c.CalendarTZ, err)
	}
	return loc, nil
}

// OutboxEnabled reports whether events go through the Mongo outbox relay
// instead of straight to Kafka.
func (c Config) OutboxEnabled() bool {
	return c.MongoURI != "" && len(c.KafkaBrokers) > 0
}
