package feed

import (
	"strings"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/angelmondragon/swipeshop-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/swipeshop-backend/pkg/errors"
	"github.com/angelmondragon/swipeshop-backend/pkg/pagination"
)

// CollectionQuery asks for one page of a user's liked or deleted list.
type CollectionQuery struct {
	UserID     string
	Category   enums.CollectionCategory
	LoadAmount int
	Cursor     string
	Reversed   bool
	Filter     catalog.Filter
}

// DiscoveryQuery asks for one page of catalog items the user has not acted on.
type DiscoveryQuery struct {
	UserID         string
	LoadAmount     int
	Cursor         string
	Filter         catalog.Filter
	ExcludeSaved   bool
	ExcludeDeleted bool
	Ordered        bool
}

// PageResult is a feed page in display order. Total is nil when the
// strategy does not count matches.
type PageResult struct {
	Items      []catalog.Item
	Total      *int64
	MoreToLoad bool
	Loaded     int
	Strategy   enums.FeedStrategy
}

// IsEmpty reports whether the page carries no items.
func (p PageResult) IsEmpty() bool {
	return len(p.Items) == 0
}

// LastID returns the id to use as the next cursor.
func (p PageResult) LastID() string {
	if len(p.Items) == 0 {
		return ""
	}
	return p.Items[len(p.Items)-1].ID
}

func (q CollectionQuery) validate() error {
	if strings.TrimSpace(q.UserID) == "" {
		return pkgerrors.New(pkgerrors.CodeForbidden, "caller identity is required")
	}
	if !q.Category.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid collection category").
			WithDetails(map[string]any{"category": q.Category})
	}
	return validateLoadAmount(q.LoadAmount)
}

func (q DiscoveryQuery) validate() error {
	if strings.TrimSpace(q.UserID) == "" {
		return pkgerrors.New(pkgerrors.CodeForbidden, "caller identity is required")
	}
	return validateLoadAmount(q.LoadAmount)
}

func validateLoadAmount(amount int) error {
	if err := pagination.ValidateLoadAmount(amount); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid loadAmount").
			WithDetails(map[string]any{
				"loadAmount": amount,
				"max":        pagination.MaxLoadAmount,
			})
	}
	return nil
}
