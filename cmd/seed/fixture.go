package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
)

type fixtureProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Gender      string          `json:"gender"`
	Categories  []string        `json:"categories"`
	Colors      []string        `json:"colors"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
	Rank        *int            `json:"rank"`
}

// parseFixture decodes a JSON array of products. Missing ids get a uuid and
// missing ranks are drawn with catalog.NewRank.
func parseFixture(r io.Reader) ([]catalog.Item, error) {
	var raw []fixtureProduct
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	items := make([]catalog.Item, 0, len(raw))
	for i, p := range raw {
		item := catalog.Item{
			ID:          strings.TrimSpace(p.ID),
			Name:        strings.TrimSpace(p.Name),
			Description: strings.TrimSpace(p.Description),
			Gender:      strings.TrimSpace(p.Gender),
			Categories:  p.Categories,
			Colors:      p.Colors,
			Price:       p.Price,
			ImageURL:    p.ImageURL,
		}
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if p.Rank != nil {
			item.Rank = *p.Rank
		} else {
			item.Rank = catalog.NewRank()
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("product %d (%s): %w", i, item.ID, err)
		}
		items = append(items, item)
	}
	return items, nil
}
