package feed

import (
	"context"
	"sort"
	"sync"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/angelmondragon/swipeshop-backend/internal/references"
	"github.com/angelmondragon/swipeshop-backend/pkg/enums"
)

type fakeStore struct {
	mu      sync.Mutex
	lists   map[string][]string
	err     error
	readAll int
}

func newFakeStore() *fakeStore {
	return &fakeStore{lists: map[string][]string{}}
}

func listKey(userID string, category enums.CollectionCategory) string {
	return userID + "/" + string(category)
}

func (f *fakeStore) set(userID string, category enums.CollectionCategory, ids ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[listKey(userID, category)] = append([]string(nil), ids...)
}

func (f *fakeStore) Add(_ context.Context, userID string, category enums.CollectionCategory, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	key := listKey(userID, category)
	if references.IndexOf(f.lists[key], productID) >= 0 {
		return nil
	}
	f.lists[key] = append(f.lists[key], productID)
	return nil
}

func (f *fakeStore) Remove(_ context.Context, userID string, category enums.CollectionCategory, productID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	key := listKey(userID, category)
	list := f.lists[key]
	if idx := references.IndexOf(list, productID); idx >= 0 {
		f.lists[key] = append(list[:idx:idx], list[idx+1:]...)
	}
	return nil
}

func (f *fakeStore) ReadAll(_ context.Context, userID string, category enums.CollectionCategory) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.readAll++
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.lists[listKey(userID, category)]...), nil
}

func (f *fakeStore) ReadWindow(_ context.Context, userID string, category enums.CollectionCategory, amount int, cursor string, reversed bool) (references.Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return references.Window{}, f.err
	}
	return references.WindowOf(f.lists[listKey(userID, category)], cursor, amount, reversed)
}

type fakeCatalog struct {
	items []catalog.Item
	err   error
	calls int
}

func (f *fakeCatalog) matching(c catalog.Criteria) []catalog.Item {
	var out []catalog.Item
	for _, item := range f.items {
		if c.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func (f *fakeCatalog) FindByIDs(_ context.Context, ids []string) ([]catalog.Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	found := f.matching(catalog.Where(catalog.Filter{}).IDsIn(ids))
	// scramble to make sure callers restore order themselves
	sort.Slice(found, func(i, j int) bool { return found[i].ID > found[j].ID })
	return found, nil
}

func (f *fakeCatalog) FindMatching(_ context.Context, c catalog.Criteria) ([]catalog.Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	found := f.matching(c)
	sort.Slice(found, func(i, j int) bool { return found[i].ID > found[j].ID })
	return found, nil
}

func (f *fakeCatalog) Count(_ context.Context, c catalog.Criteria) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.matching(c))), nil
}

func (f *fakeCatalog) Sample(_ context.Context, c catalog.Criteria, n int) ([]catalog.Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	found := f.matching(c)
	if len(found) > n {
		found = found[:n]
	}
	return found, nil
}

func (f *fakeCatalog) ListByRank(_ context.Context, c catalog.Criteria, limit int) ([]catalog.Item, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	found := f.matching(c)
	sort.Slice(found, func(i, j int) bool {
		if found[i].Rank != found[j].Rank {
			return found[i].Rank > found[j].Rank
		}
		return found[i].ID > found[j].ID
	})
	if len(found) > limit {
		found = found[:limit]
	}
	return found, nil
}

func (f *fakeCatalog) RankOf(_ context.Context, id string) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	for _, item := range f.items {
		if item.ID == id {
			return item.Rank, nil
		}
	}
	return 0, catalog.ErrNotFound
}

func (f *fakeCatalog) Create(_ context.Context, item *catalog.Item) error {
	for _, existing := range f.items {
		if existing.ID == item.ID {
			return catalog.ErrDuplicate
		}
	}
	f.items = append(f.items, *item)
	return nil
}
