package feed

import (
	"context"
	"sort"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/angelmondragon/swipeshop-backend/internal/references"
	"github.com/angelmondragon/swipeshop-backend/pkg/enums"
	"github.com/angelmondragon/swipeshop-backend/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

// Collection returns one page of the caller's liked or deleted list.
// Without a filter the page is a positional window of the list; with a
// filter the whole list is matched against the catalog.
func (s *service) Collection(ctx context.Context, q CollectionQuery) (page PageResult, err error) {
	started := s.now()
	q.Cursor = pagination.Cursor(q.Cursor)
	strategy := enums.FeedStrategySlice
	if !q.Filter.IsEmpty() {
		strategy = enums.FeedStrategyScan
	}
	defer func() {
		s.observe(feedCollection, strategy, started, page, err)
		if err != nil {
			s.fail(ctx, feedCollection, strategy, err)
		}
	}()

	if err := q.validate(); err != nil {
		return PageResult{}, err
	}
	if strategy == enums.FeedStrategyScan {
		page, err = s.scanCollection(ctx, q)
	} else {
		page, err = s.sliceCollection(ctx, q)
	}
	if err != nil {
		return PageResult{}, err
	}
	page.Strategy = strategy
	return page, nil
}

// sliceCollection reads positional windows. A window whose references are
// all gone from the catalog is stepped over so a non-empty page always ends
// with a usable cursor.
func (s *service) sliceCollection(ctx context.Context, q CollectionQuery) (PageResult, error) {
	cursor := q.Cursor
	for {
		window, err := s.refs.ReadWindow(ctx, q.UserID, q.Category, q.LoadAmount, cursor, q.Reversed)
		if err != nil {
			return PageResult{}, upstream(err, "read reference window")
		}
		total := int64(window.Total)
		page := PageResult{Total: &total, Items: []catalog.Item{}}
		if len(window.IDs) == 0 {
			return page, nil
		}

		found, err := s.catalog.FindByIDs(ctx, window.IDs)
		if err != nil {
			return PageResult{}, upstream(err, "load collection items")
		}
		items := OrderIDs(found, window.IDs)
		if q.Reversed {
			reverseItems(items)
			page.MoreToLoad = window.Start > 0
			cursor = window.IDs[0]
		} else {
			page.MoreToLoad = window.CursorIndex+1+len(window.IDs) < window.Total
			cursor = window.IDs[len(window.IDs)-1]
		}
		if len(items) == 0 && page.MoreToLoad {
			continue
		}
		page.Items = items
		page.Loaded = len(items)
		return page, nil
	}
}

type rankedItem struct {
	item catalog.Item
	rank int
}

func (s *service) scanCollection(ctx context.Context, q CollectionQuery) (PageResult, error) {
	list, err := s.refs.ReadAll(ctx, q.UserID, q.Category)
	if err != nil {
		return PageResult{}, upstream(err, "read reference list")
	}
	cursorRank := -1
	if q.Cursor != "" {
		idx := references.IndexOf(list, q.Cursor)
		if idx < 0 {
			return PageResult{}, upstream(references.ErrCursorNotFound, "locate cursor")
		}
		cursorRank = listRank(idx, len(list), q.Reversed)
	}
	if len(list) == 0 {
		var zero int64
		return PageResult{Total: &zero, Items: []catalog.Item{}}, nil
	}

	criteria := catalog.Where(q.Filter).IDsIn(list)
	var (
		matches []catalog.Item
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.catalog.FindMatching(gctx, criteria)
		if err != nil {
			return upstream(err, "match collection items")
		}
		matches = found
		return nil
	})
	g.Go(func() error {
		count, err := s.catalog.Count(gctx, criteria)
		if err != nil {
			return upstream(err, "count collection matches")
		}
		total = count
		return nil
	})
	if err := g.Wait(); err != nil {
		return PageResult{}, err
	}

	position := make(map[string]int, len(list))
	for i, id := range list {
		position[id] = listRank(i, len(list), q.Reversed)
	}
	ranked := make([]rankedItem, 0, len(matches))
	for _, item := range matches {
		rank, ok := position[item.ID]
		if !ok {
			continue
		}
		ranked = append(ranked, rankedItem{item: item, rank: rank})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].rank < ranked[j].rank })

	skip := sort.Search(len(ranked), func(i int) bool { return ranked[i].rank > cursorRank })
	end := skip + q.LoadAmount
	if end > len(ranked) {
		end = len(ranked)
	}
	items := make([]catalog.Item, 0, end-skip)
	for _, r := range ranked[skip:end] {
		items = append(items, r.item)
	}
	return PageResult{
		Items:      items,
		Total:      &total,
		MoreToLoad: int64(skip+len(items)) < total,
		Loaded:     len(items),
	}, nil
}

// listRank is the display position of index i. Reversed lists are
// displayed newest first.
func listRank(i, length int, reversed bool) int {
	if reversed {
		return length - 1 - i
	}
	return i
}
