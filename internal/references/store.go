package references

import (
	"context"
	"errors"

	"github.com/angelmondragon/swipeshop-backend/pkg/enums"
)

// ErrCursorNotFound is returned when a window cursor is not in the list.
var ErrCursorNotFound = errors.New("cursor not found in reference list")

// Store owns each user's ordered, duplicate-free product reference lists,
// one per collection category.
type Store interface {
	// Add appends productID to the list unless it is already present.
	Add(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error
	// Remove deletes productID from the list if present.
	Remove(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error
	// ReadAll returns the whole list in insertion order.
	ReadAll(ctx context.Context, userID string, category enums.CollectionCategory) ([]string, error)
	// ReadWindow returns up to amount ids next to cursor. See Bounds.
	ReadWindow(ctx context.Context, userID string, category enums.CollectionCategory, amount int, cursor string, reversed bool) (Window, error)
}

// Window is a contiguous slice of a reference list, in list order.
type Window struct {
	IDs         []string
	Total       int
	CursorIndex int
	Start       int
}
