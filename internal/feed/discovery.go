package feed

import (
	"context"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/angelmondragon/swipeshop-backend/pkg/enums"
	"github.com/angelmondragon/swipeshop-backend/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

// Discover returns catalog items the caller has not saved or deleted,
// either sampled at random or walked by rank.
func (s *service) Discover(ctx context.Context, q DiscoveryQuery) (page PageResult, err error) {
	started := s.now()
	q.Cursor = pagination.Cursor(q.Cursor)
	strategy := enums.FeedStrategyRandom
	if q.Ordered {
		strategy = enums.FeedStrategyRankCursor
	}
	defer func() {
		s.observe(feedDiscover, strategy, started, page, err)
		if err != nil {
			s.fail(ctx, feedDiscover, strategy, err)
		}
	}()

	if err := q.validate(); err != nil {
		return PageResult{}, err
	}
	excluded, err := s.exclusions(ctx, q)
	if err != nil {
		return PageResult{}, err
	}
	criteria := catalog.Where(q.Filter).IDsNotIn(excluded)

	var items []catalog.Item
	if q.Ordered {
		items, err = s.rankPage(ctx, criteria, q)
	} else {
		items, err = s.catalog.Sample(ctx, criteria, q.LoadAmount)
		if err != nil {
			err = upstream(err, "sample catalog")
		}
	}
	if err != nil {
		return PageResult{}, err
	}
	if items == nil {
		items = []catalog.Item{}
	}
	return PageResult{
		Items:      items,
		MoreToLoad: len(items) == q.LoadAmount,
		Loaded:     len(items),
		Strategy:   strategy,
	}, nil
}

func (s *service) rankPage(ctx context.Context, criteria catalog.Criteria, q DiscoveryQuery) ([]catalog.Item, error) {
	if q.Cursor != "" {
		rank, err := s.catalog.RankOf(ctx, q.Cursor)
		if err != nil {
			return nil, upstream(err, "load cursor rank")
		}
		criteria = criteria.RankBelow(rank)
	}
	items, err := s.catalog.ListByRank(ctx, criteria, q.LoadAmount)
	if err != nil {
		return nil, upstream(err, "list catalog by rank")
	}
	return items, nil
}

// exclusions reads the requested reference lists in parallel and returns
// their union.
func (s *service) exclusions(ctx context.Context, q DiscoveryQuery) ([]string, error) {
	var saved, deleted []string
	g, gctx := errgroup.WithContext(ctx)
	if q.ExcludeSaved {
		g.Go(func() error {
			list, err := s.refs.ReadAll(gctx, q.UserID, enums.CollectionLiked)
			if err != nil {
				return upstream(err, "read saved list")
			}
			saved = list
			return nil
		})
	}
	if q.ExcludeDeleted {
		g.Go(func() error {
			list, err := s.refs.ReadAll(gctx, q.UserID, enums.CollectionDeleted)
			if err != nil {
				return upstream(err, "read deleted list")
			}
			deleted = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	union := make([]string, 0, len(saved)+len(deleted))
	seen := make(map[string]struct{}, cap(union))
	for _, id := range append(saved, deleted...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		union = append(union, id)
	}
	return union, nil
}
