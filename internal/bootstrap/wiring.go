package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/travelbooking/api"
	"github.com/Domenick1991/travelbooking/config"
	"github.com/Domenick1991/travelbooking/internal/cache"
	"github.com/Domenick1991/travelbooking/internal/domain"
	"github.com/Domenick1991/travelbooking/internal/kafka"
	"github.com/Domenick1991/travelbooking/internal/metrics"
	"github.com/Domenick1991/travelbooking/internal/repository"
	"github.com/Domenick1991/travelbooking/internal/service/records"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App holds the wired services and everything that must be closed on exit.
type App struct {
	Services api.Services
	Metrics  *metrics.Metrics
	closers  []func()
}

func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

type wiring struct {
	log                *slog.Logger
	cache              cache.Cache
	producer           records.Producer
	topic              string
	notificationsTopic string
	metrics            *metrics.Metrics
}

// Build opens the configured backing store and optional cache and event
// producer, then assembles one service per entity.
func Build(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	app := &App{Metrics: metrics.New()}
	w := wiring{log: log, metrics: app.Metrics}

	if cacheEnabled(cfg, log) {
		redisCache := cache.NewRedisCache(cfg.Redis)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn("redis unavailable, serving without cache", "addr", cfg.Redis.Addr, "error", err)
			_ = redisCache.Close()
		} else {
			w.cache = redisCache
			app.closers = append(app.closers, func() { _ = redisCache.Close() })
		}
	}

	if len(cfg.Kafka.Brokers) > 0 {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
		if err := producer.CheckConnection(ctx); err != nil {
			log.Warn("kafka check failed, events may be lost", "error", err)
		}
		w.producer = producer
		w.topic = cfg.Kafka.RecordsTopic
		w.notificationsTopic = cfg.Kafka.NotificationsTopic
		app.closers = append(app.closers, func() { _ = producer.Close() })
	}

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		app.closers = append(app.closers, pool.Close)
		app.Services = api.Services{
			Users:    newService(repository.NewUserRepository(pool), w),
			Flights:  newService(repository.NewFlightRepository(pool), w),
			Hotels:   newService(repository.NewHotelRepository(pool), w),
			Bookings: newService(repository.NewBookingRepository(pool), w),
			Payments: newService(repository.NewPaymentRepository(pool), w),
		}
	default:
		stores := repository.NewMemoryStores()
		app.Services = api.Services{
			Users:    newService[domain.User](stores.Users, w),
			Flights:  newService[domain.Flight](stores.Flights, w),
			Hotels:   newService[domain.Hotel](stores.Hotels, w),
			Bookings: newService[domain.Booking](stores.Bookings, w),
			Payments: newService[domain.Payment](stores.Payments, w),
		}
	}

	log.Info("services ready",
		"storage", cfg.Storage.Driver,
		"cache", w.cache != nil,
		"events", w.producer != nil,
	)
	return app, nil
}

// cacheEnabled reports whether records should be cached in Redis. The memory
// store restarts empty and reissues ids, so entries left in Redis by an earlier
// process would be served for records that no longer exist.
func cacheEnabled(cfg *config.Config, log *slog.Logger) bool {
	if cfg.Redis.Addr == "" {
		return false
	}
	if cfg.Storage.Driver != config.StoragePostgres {
		log.Warn("redis cache ignored for non-persistent storage", "storage", cfg.Storage.Driver)
		return false
	}
	return true
}

func newService[T domain.Record[T]](repo repository.Repository[T], w wiring) records.UseCase[T] {
	if w.cache != nil {
		repo = cache.NewCachedRepository[T](repo, w.cache, w.log)
	}
	opts := []records.Option[T]{records.WithMutationRecorder[T](w.metrics)}
	if w.producer != nil {
		opts = append(opts,
			records.WithProducer[T](w.producer, w.topic),
			records.WithNotificationsTopic[T](w.notificationsTopic),
		)
	}
	return records.NewService[T](repo, opts...)
}
