package feed

import (
	"sort"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
)

// OrderIDs returns items sorted by the position of their id in order.
// Items whose id does not appear in order are dropped.
func OrderIDs(items []catalog.Item, order []string) []catalog.Item {
	position := make(map[string]int, len(order))
	for i, id := range order {
		if _, seen := position[id]; !seen {
			position[id] = i
		}
	}
	out := make([]catalog.Item, 0, len(items))
	for _, item := range items {
		if _, ok := position[item.ID]; ok {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return position[out[i].ID] < position[out[j].ID]
	})
	return out
}

func reverseItems(items []catalog.Item) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
