package catalog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("catalog item not found")
	// ErrDuplicate is returned when creating an item whose id is taken.
	ErrDuplicate = errors.New("catalog item already exists")
)

// Catalog is the queryable product store shared by both feeds.
type Catalog interface {
	// FindByIDs returns the items with the given ids in no particular order.
	FindByIDs(ctx context.Context, ids []string) ([]Item, error)
	// FindMatching returns every item satisfying c in no particular order.
	FindMatching(ctx context.Context, c Criteria) ([]Item, error)
	Count(ctx context.Context, c Criteria) (int64, error)
	// Sample draws up to n items satisfying c uniformly at random.
	Sample(ctx context.Context, c Criteria, n int) ([]Item, error)
	// ListByRank returns up to limit items satisfying c ordered by
	// rank descending then id descending.
	ListByRank(ctx context.Context, c Criteria, limit int) ([]Item, error)
	// RankOf returns the rank of the item or ErrNotFound.
	RankOf(ctx context.Context, id string) (int, error)
	// Create inserts item. The rank is persisted as given; draw it with NewRank.
	Create(ctx context.Context, item *Item) error
}
