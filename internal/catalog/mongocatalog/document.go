package mongocatalog

import (
	"fmt"
	"time"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/shopspring/decimal"
)

const collectionName = "products"

// productDocument is the stored shape of a catalog item. Price is kept as
// a decimal string to avoid float rounding.
type productDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Gender      string    `bson:"gender"`
	Categories  []string  `bson:"categories"`
	Colors      []string  `bson:"colors"`
	Rank        int       `bson:"rank"`
	Price       string    `bson:"price"`
	ImageURL    string    `bson:"image_url,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d productDocument) toItem() (catalog.Item, error) {
	price, err := decimal.NewFromString(d.Price)
	if err != nil {
		return catalog.Item{}, fmt.Errorf("product %s: invalid price %q: %w", d.ID, d.Price, err)
	}
	return catalog.Item{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Gender:      d.Gender,
		Categories:  d.Categories,
		Colors:      d.Colors,
		Rank:        d.Rank,
		Price:       price,
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}, nil
}

func fromItem(item catalog.Item, now time.Time) productDocument {
	categories := item.Categories
	if categories == nil {
		categories = []string{}
	}
	colors := item.Colors
	if colors == nil {
		colors = []string{}
	}
	return productDocument{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Gender:      item.Gender,
		Categories:  categories,
		Colors:      colors,
		Rank:        item.Rank,
		Price:       item.Price.String(),
		ImageURL:    item.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func toItems(docs []productDocument) ([]catalog.Item, error) {
	items := make([]catalog.Item, 0, len(docs))
	for _, doc := range docs {
		item, err := doc.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
