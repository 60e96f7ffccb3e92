package controllers

import (
	"net/http"

	"github.com/angelmondragon/swipeshop-backend/api/middleware"
	"github.com/angelmondragon/swipeshop-backend/api/responses"
	"github.com/angelmondragon/swipeshop-backend/api/validators"
	"github.com/angelmondragon/swipeshop-backend/internal/feed"
	"github.com/angelmondragon/swipeshop-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/swipeshop-backend/pkg/errors"
	"github.com/angelmondragon/swipeshop-backend/pkg/logger"
)

// Discover returns catalog items the caller has not seen yet.
func Discover(svc feed.Service, feedCfg config.FeedConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "feed service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "caller identity missing"))
			return
		}

		params, err := validators.ParseDiscoveryParams(r, feedCfg.DefaultLoadAmount)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		page, err := svc.Discover(ctx, feed.DiscoveryQuery{
			UserID:         userID,
			LoadAmount:     params.LoadAmount,
			Cursor:         params.StartAt,
			Filter:         params.Filter(),
			ExcludeSaved:   params.ExcludeSaved,
			ExcludeDeleted: params.ExcludeDeleted,
			Ordered:        params.Ordered,
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteFeed(w, page.Items, page.Loaded, page.Total, page.MoreToLoad)
	}
}
