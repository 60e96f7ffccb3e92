package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/angelmondragon/swipeshop-backend/api/middleware"
	"github.com/angelmondragon/swipeshop-backend/api/responses"
	"github.com/angelmondragon/swipeshop-backend/api/validators"
	"github.com/angelmondragon/swipeshop-backend/internal/feed"
	"github.com/angelmondragon/swipeshop-backend/pkg/config"
	"github.com/angelmondragon/swipeshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swipeshop-backend/pkg/errors"
	"github.com/angelmondragon/swipeshop-backend/pkg/logger"
)

// CollectionList returns one page of the caller's liked or deleted list.
func CollectionList(svc feed.Service, feedCfg config.FeedConfig, logg *logger.Logger) http.HandlerFunc {
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

		category, err := categoryParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		params, err := validators.ParseCollectionParams(r, feedCfg.DefaultLoadAmount)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		page, err := svc.Collection(ctx, feed.CollectionQuery{
			UserID:     userID,
			Category:   category,
			LoadAmount: params.LoadAmount,
			Cursor:     params.StartAt,
			Reversed:   params.Reversed,
			Filter:     params.Filter(),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteFeed(w, page.Items, page.Loaded, page.Total, page.MoreToLoad)
	}
}

// CollectionAdd appends a catalog product to the caller's list.
func CollectionAdd(svc feed.Service, logg *logger.Logger) http.HandlerFunc {
	return collectionMutation(svc, logg, "added", func(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error {
		return svc.AddToCollection(ctx, userID, category, productID)
	})
}

// CollectionRemove drops a product from the caller's list.
func CollectionRemove(svc feed.Service, logg *logger.Logger) http.HandlerFunc {
	return collectionMutation(svc, logg, "removed", func(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error {
		return svc.RemoveFromCollection(ctx, userID, category, productID)
	})
}

type mutateFunc func(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error

func collectionMutation(svc feed.Service, logg *logger.Logger, result string, mutate mutateFunc) http.HandlerFunc {
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

		category, err := categoryParam(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		productID := validators.SanitizeString(chi.URLParam(r, "productId"), 0)
		if productID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		if err := mutate(ctx, userID, category, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{result: true})
	}
}

func categoryParam(r *http.Request) (enums.CollectionCategory, error) {
	raw := chi.URLParam(r, "category")
	category, err := enums.ParseCollectionCategory(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid collection category").
			WithDetails(map[string]any{"category": strings.TrimSpace(raw)})
	}
	return category, nil
}
