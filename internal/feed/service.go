package feed

import (
	"context"
	"errors"
	"time"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/angelmondragon/swipeshop-backend/internal/references"
	"github.com/angelmondragon/swipeshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swipeshop-backend/pkg/errors"
	"github.com/angelmondragon/swipeshop-backend/pkg/logger"
	"github.com/angelmondragon/swipeshop-backend/pkg/metrics"
)

const (
	feedCollection = "collection"
	feedDiscover   = "discover"
)

// ServiceParams groups dependencies for the feed service.
type ServiceParams struct {
	References references.Store
	Catalog    catalog.Catalog
	Metrics    *metrics.FeedMetrics
	Logger     *logger.Logger
	Now        func() time.Time
}

// Service paginates collections and the discovery feed and mutates the
// reference lists behind them.
type Service interface {
	Collection(ctx context.Context, q CollectionQuery) (PageResult, error)
	Discover(ctx context.Context, q DiscoveryQuery) (PageResult, error)
	AddToCollection(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error
	RemoveFromCollection(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error
}

type service struct {
	refs    references.Store
	catalog catalog.Catalog
	metrics *metrics.FeedMetrics
	logg    *logger.Logger
	now     func() time.Time
}

// NewService builds a feed service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.References == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reference store is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog is required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		refs:    params.References,
		catalog: params.Catalog,
		metrics: params.Metrics,
		logg:    logg,
		now:     now,
	}, nil
}

func (s *service) observe(feed string, strategy enums.FeedStrategy, started time.Time, page PageResult, err error) {
	outcome := metrics.OutcomeOK
	switch {
	case pkgerrors.IsClientError(err):
		outcome = metrics.OutcomeRejected
	case err != nil:
		outcome = metrics.OutcomeError
	case page.IsEmpty():
		outcome = metrics.OutcomeEmpty
	}
	s.metrics.ObservePage(feed, strategy.String(), outcome, s.now().Sub(started), page.Loaded)
}

func (s *service) fail(ctx context.Context, feed string, strategy enums.FeedStrategy, err error) {
	if pkgerrors.HasCode(err, pkgerrors.CodeUpstream) {
		ctx = s.logg.WithFeed(ctx, feed, strategy.String())
		s.logg.Error(ctx, "feed."+feed+".failed", err)
	}
}

// upstream classifies store and catalog errors. A cursor that is no
// longer in the list, or no longer in the catalog, is reported as not found.
func upstream(err error, message string) error {
	switch {
	case errors.Is(err, references.ErrCursorNotFound), errors.Is(err, catalog.ErrNotFound):
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "cursor not found").
			WithDetails(map[string]any{"param": "startAt"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, message)
	}
}
