package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/swipeshop-backend/api/controllers"
	"github.com/angelmondragon/swipeshop-backend/api/middleware"
	"github.com/angelmondragon/swipeshop-backend/api/routes"
	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/angelmondragon/swipeshop-backend/internal/catalog/mongocatalog"
	"github.com/angelmondragon/swipeshop-backend/internal/catalog/sqlcatalog"
	"github.com/angelmondragon/swipeshop-backend/internal/feed"
	"github.com/angelmondragon/swipeshop-backend/internal/references"
	"github.com/angelmondragon/swipeshop-backend/internal/references/mongorefs"
	"github.com/angelmondragon/swipeshop-backend/internal/references/sqlrefs"
	"github.com/angelmondragon/swipeshop-backend/pkg/config"
	"github.com/angelmondragon/swipeshop-backend/pkg/db"
	"github.com/angelmondragon/swipeshop-backend/pkg/instance"
	"github.com/angelmondragon/swipeshop-backend/pkg/logger"
	"github.com/angelmondragon/swipeshop-backend/pkg/metrics"
	"github.com/angelmondragon/swipeshop-backend/pkg/migrate"
	pkgmongo "github.com/angelmondragon/swipeshop-backend/pkg/mongo"
	"github.com/angelmondragon/swipeshop-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

// stores holds the backend selected by configuration and everything that
// must be released on shutdown.
type stores struct {
	refs      references.Store
	catalog   catalog.Catalog
	readiness []controllers.ReadinessCheck
	closers   []func(context.Context) error
}

func (s *stores) close(ctx context.Context) error {
	var err error
	for i := len(s.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, s.closers[i](ctx))
	}
	return err
}

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred closers finish before exit.
func run() int {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		return 1
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Instance:    instance.ID(),
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backends, err := openStores(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap stores", err)
		return 1
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := backends.close(closeCtx); err != nil {
			logg.Error(closeCtx, "error closing stores", err)
		}
	}()

	var limiter middleware.RateLimiter
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			return 1
		}
		backends.closers = append(backends.closers, func(context.Context) error { return redisClient.Close() })
		backends.readiness = append(backends.readiness, controllers.ReadinessCheck{Name: "redis", Pinger: redisClient})
		limiter = redisClient
	} else {
		backends.readiness = append(backends.readiness, controllers.ReadinessCheck{Name: "redis"})
		logg.Warn(ctx, "redis not configured, feed rate limiting disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	feedService, err := feed.NewService(feed.ServiceParams{
		References: backends.refs,
		Catalog:    backends.catalog,
		Metrics:    metrics.NewFeedMetrics(registry),
		Logger:     logg,
	})
	if err != nil {
		logg.Error(ctx, "failed to create feed service", err)
		return 1
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	serverCtx := logg.WithFields(ctx, map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Store.Backend,
	})
	logg.Info(serverCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Params{
			Config:      cfg,
			Logger:      logg,
			FeedService: feedService,
			RateLimiter: limiter,
			Gatherer:    registry,
			Readiness:   backends.readiness,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(serverCtx, "api server stopped unexpectedly", err)
			return 1
		}
	case <-ctx.Done():
		logg.Info(serverCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(serverCtx, "api server shutdown failed", err)
			return 1
		}
	}
	return 0
}

func openStores(ctx context.Context, cfg *config.Config, logg *logger.Logger) (*stores, error) {
	s := &stores{}
	if cfg.Store.UsesMongo() {
		client, err := pkgmongo.New(ctx, cfg.Mongo, logg)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Close)
		s.readiness = append(s.readiness, controllers.ReadinessCheck{Name: "mongo", Pinger: client})

		catalogRepo := mongocatalog.NewRepository(client.Database())
		if err := catalogRepo.EnsureIndexes(ctx); err != nil {
			return nil, multierr.Append(err, s.close(ctx))
		}
		s.catalog = catalogRepo
		s.refs = mongorefs.NewRepository(client.Database())
		return s, nil
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, func(context.Context) error { return dbClient.Close() })
	s.readiness = append(s.readiness, controllers.ReadinessCheck{Name: "db", Pinger: dbClient})

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return nil, multierr.Append(err, s.close(ctx))
	}
	s.catalog = sqlcatalog.NewRepository(dbClient.DB())
	s.refs = sqlrefs.NewRepository(dbClient.DB())
	return s, nil
}
