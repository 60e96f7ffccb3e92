package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/swipeshop-backend/api/controllers"
	"github.com/angelmondragon/swipeshop-backend/api/middleware"
	"github.com/angelmondragon/swipeshop-backend/internal/feed"
	"github.com/angelmondragon/swipeshop-backend/pkg/config"
	"github.com/angelmondragon/swipeshop-backend/pkg/logger"
)

// Params groups the dependencies the HTTP surface is built from.
type Params struct {
	Config      *config.Config
	Logger      *logger.Logger
	FeedService feed.Service
	// RateLimiter is optional; feed routes are not throttled without it.
	RateLimiter middleware.RateLimiter
	Gatherer    prometheus.Gatherer
	Readiness   []controllers.ReadinessCheck
}

func NewRouter(p Params) http.Handler {
	cfg, logg := p.Config, p.Logger
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	feedPolicy := middleware.NewRateLimitPolicy("feed", cfg.Feed.RateLimit, cfg.Feed.RateLimitWindow)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.Readiness...))
	})

	if p.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(p.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RateLimit(feedPolicy, p.RateLimiter, logg))

		r.Route("/collections/{category}", func(r chi.Router) {
			r.Get("/", controllers.CollectionList(p.FeedService, cfg.Feed, logg))
			r.Put("/{productId}", controllers.CollectionAdd(p.FeedService, logg))
			r.Delete("/{productId}", controllers.CollectionRemove(p.FeedService, logg))
		})
		r.Get("/discover", controllers.Discover(p.FeedService, cfg.Feed, logg))
	})

	return r
}
