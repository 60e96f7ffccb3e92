package catalog

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxRank is the upper bound of the rank range assigned at creation.
const MaxRank = 32767

// Item is a catalog product as served by the feeds.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Gender      string          `json:"gender"`
	Categories  []string        `json:"categories"`
	Colors      []string        `json:"colors"`
	Rank        int             `json:"rank"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewRank draws a rank uniformly from [0, MaxRank].
func NewRank() int {
	return rand.IntN(MaxRank + 1)
}

// ValidRank reports whether rank lies in [0, MaxRank].
func ValidRank(rank int) bool {
	return rank >= 0 && rank <= MaxRank
}

// Validate checks the fields every backend requires before insert.
func (i Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("item id is required")
	}
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("item %s: name is required", i.ID)
	}
	if !ValidRank(i.Rank) {
		return fmt.Errorf("item %s: rank %d outside [0, %d]", i.ID, i.Rank, MaxRank)
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("item %s: price must not be negative", i.ID)
	}
	return nil
}
