package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"holidaze/internal/app/middleware"
	appoutbox "holidaze/internal/app/outbox"
	"holidaze/internal/app/policies"
	domainauth "holidaze/internal/domain/auth"
	domainfavorites "holidaze/internal/domain/favorites"
	"holidaze/internal/infra/broker/kafka"
	"holidaze/internal/infra/config"
	mongostore "holidaze/internal/infra/db/mongo"
	"holidaze/internal/infra/obs"
	outboxstore "holidaze/internal/infra/outbox"
	"holidaze/internal/infra/storage/memory"
	redisstore "holidaze/internal/infra/storage/redis"
)

// backends holds the stores and notifier the application runs on. Each
// falls back to an in-process implementation when its server is not configured.
type backends struct {
	sessions    domainauth.SessionStore
	favorites   domainfavorites.Repository
	idempotency middleware.IdempotencyStore
	notifier    policies.Notifier
	checks      map[string]obs.Check
	closers     []func(context.Context) error
	workers     []func(context.Context) error
}

func memoryBackends(idempTTL time.Duration, logger *slog.Logger) *backends {
	return &backends{
		sessions:    memory.NewSessionStore(),
		favorites:   memory.NewFavoritesRepository(),
		idempotency: memory.NewIdempotencyStore(idempTTL),
		notifier:    obs.LogNotifier{Logger: logger},
		checks:      map[string]obs.Check{},
	}
}

func connectBackends(ctx context.Context, cfg config.Config, logger *slog.Logger) (*backends, error) {
	b := memoryBackends(cfg.IdempotencyTTL, logger)

	if cfg.RedisAddr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return nil, err
		}
		b.sessions = redisstore.NewSessionStore(rdb)
		b.checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		b.closers = append(b.closers, closeRedis(rdb))
		logger.Info("sessions stored in redis", "addr", cfg.RedisAddr)
	}

	var db *mongo.Database
	if cfg.MongoURI != "" {
		client, err := mongostore.New(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			b.close(logger)
			return nil, err
		}
		b.closers = append(b.closers, client.Close)
		idem, err := mongostore.NewIdempotencyStore(ctx, client.DB, cfg.IdempotencyTTL)
		if err != nil {
			b.close(logger)
			return nil, err
		}
		db = client.DB
		b.idempotency = idem
		b.favorites = mongostore.NewFavoritesRepository(client.DB)
		b.checks["mongo"] = client.Ping
		logger.Info("favorites and idempotency stored in mongo", "db", cfg.MongoDB)
	}

	if len(cfg.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers, kafka.ProducerOptions{ClientID: cfg.KafkaClientID})
		if err != nil {
			b.close(logger)
			return nil, err
		}
		b.closers = append(b.closers, func(context.Context) error { return producer.Close() })
		if cfg.OutboxEnabled() {
			store, err := outboxstore.NewStore(ctx, db, 0)
			if err != nil {
				b.close(logger)
				return nil, err
			}
			b.notifier = appoutbox.Notifier{Box: store, Headers: obs.EventHeaders}
			worker := &outboxstore.Worker{
				Store:       store,
				Producer:    producer,
				Interval:    cfg.OutboxInterval,
				TopicPrefix: cfg.KafkaTopicPrefix,
				Backoff:     []time.Duration{time.Second, 5 * time.Second, 30 * time.Second, 2 * time.Minute},
				Logger:      logger,
			}
			b.workers = append(b.workers, worker.Run)
			logger.Info("booking events relayed to kafka through the outbox", "brokers", cfg.KafkaBrokers)
		} else {
			b.notifier = kafka.Notifier{Producer: producer, TopicPrefix: cfg.KafkaTopicPrefix}
			logger.Info("booking events published to kafka", "brokers", cfg.KafkaBrokers)
		}
	}
	return b, nil
}

func closeRedis(rdb *goredis.Client) func(context.Context) error {
	return func(context.Context) error { return rdb.Close() }
}

// close releases backends in reverse order of acquisition.
func (b *backends) close(logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](ctx); err != nil {
			logger.Warn("backend close failed", "error", errors.Wrap(err, "close"))
		}
	}
	b.closers = nil
}
