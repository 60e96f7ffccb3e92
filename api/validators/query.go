package validators

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/swipeshop-backend/pkg/errors"
)

const maxQueryLen = 200

// FeedParams are the query parameters shared by every feed route.
type FeedParams struct {
	LoadAmount int      `json:"loadAmount" validate:"loadamount"`
	StartAt    string   `json:"startAt" validate:"max=128"`
	Genders    []string `json:"filteredGenders" validate:"max=20,dive,max=64"`
	Categories []string `json:"filteredCategories" validate:"max=20,dive,max=64"`
	Colors     []string `json:"filteredColors" validate:"max=20,dive,max=64"`
	Query      string   `json:"query" validate:"max=200"`
}

// Filter builds the normalized catalog filter for the params.
func (p FeedParams) Filter() catalog.Filter {
	return catalog.NewFilter(p.Genders, p.Categories, p.Colors, p.Query)
}

// CollectionParams are the query parameters of the collection feed.
type CollectionParams struct {
	FeedParams
	Reversed bool `json:"reversed"`
}

// DiscoveryParams are the query parameters of the discovery feed.
type DiscoveryParams struct {
	FeedParams
	ExcludeDeleted bool `json:"excludeDeleted"`
	ExcludeSaved   bool `json:"excludeSaved"`
	Ordered        bool `json:"ordered"`
}

// ParseCollectionParams reads and validates collection feed parameters.
func ParseCollectionParams(r *http.Request, defaultLoadAmount int) (CollectionParams, error) {
	feed, err := parseFeedParams(r, defaultLoadAmount)
	if err != nil {
		return CollectionParams{}, err
	}
	reversed, err := ParseQueryBool(r, "reversed")
	if err != nil {
		return CollectionParams{}, err
	}
	params := CollectionParams{FeedParams: feed, Reversed: reversed}
	if err := Struct(params); err != nil {
		return CollectionParams{}, err
	}
	return params, nil
}

// ParseDiscoveryParams reads and validates discovery feed parameters.
func ParseDiscoveryParams(r *http.Request, defaultLoadAmount int) (DiscoveryParams, error) {
	feed, err := parseFeedParams(r, defaultLoadAmount)
	if err != nil {
		return DiscoveryParams{}, err
	}
	params := DiscoveryParams{FeedParams: feed}
	if params.ExcludeDeleted, err = ParseQueryBool(r, "excludeDeleted"); err != nil {
		return DiscoveryParams{}, err
	}
	if params.ExcludeSaved, err = ParseQueryBool(r, "excludeSaved"); err != nil {
		return DiscoveryParams{}, err
	}
	if params.Ordered, err = ParseQueryBool(r, "ordered"); err != nil {
		return DiscoveryParams{}, err
	}
	if err := Struct(params); err != nil {
		return DiscoveryParams{}, err
	}
	return params, nil
}

func parseFeedParams(r *http.Request, defaultLoadAmount int) (FeedParams, error) {
	amount, err := ParseQueryInt(r, "loadAmount", defaultLoadAmount)
	if err != nil {
		return FeedParams{}, err
	}
	q := r.URL.Query()
	return FeedParams{
		LoadAmount: amount,
		StartAt:    strings.TrimSpace(q.Get("startAt")),
		Genders:    catalog.SplitList(q.Get("filteredGenders")),
		Categories: catalog.SplitList(q.Get("filteredCategories")),
		Colors:     catalog.SplitList(q.Get("filteredColors")),
		Query:      SanitizeString(q.Get("query"), maxQueryLen),
	}, nil
}

// ParseQueryInt reads an integer query parameter. Range checks are left
// to struct validation.
func ParseQueryInt(r *http.Request, key string, defaultVal int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParseQueryBool reads a boolean query parameter, defaulting to false.
func ParseQueryBool(r *http.Request, key string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a boolean").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
