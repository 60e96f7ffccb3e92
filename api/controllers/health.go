package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/swipeshop-backend/api/responses"
	"github.com/angelmondragon/swipeshop-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/swipeshop-backend/pkg/errors"
	"github.com/angelmondragon/swipeshop-backend/pkg/logger"
)

const envHeader = "X-Swipeshop-Env"

// Pinger is a dependency that can report its own reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck names one dependency checked by the readiness endpoint.
// A nil Pinger marks a dependency that is not configured.
type ReadinessCheck struct {
	Name   string
	Pinger Pinger
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every configured dependency and fails on the first
// one that is unreachable.
func HealthReady(cfg *config.Config, logg *logger.Logger, checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set(envHeader, cfg.App.Env)

		status := make(map[string]string, len(checks))
		for _, check := range checks {
			if check.Pinger == nil {
				status[check.Name] = "disabled"
				continue
			}
			if err := check.Pinger.Ping(ctx); err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, check.Name+" not ready"))
				return
			}
			status[check.Name] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{
			"status": "ready",
			"checks": status,
		})
	}
}
