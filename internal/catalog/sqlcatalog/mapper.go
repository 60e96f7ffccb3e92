package sqlcatalog

import (
	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/angelmondragon/swipeshop-backend/pkg/db/models"
)

func toItems(rows []models.CatalogProduct) []catalog.Item {
	items := make([]catalog.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, toItem(row))
	}
	return items
}

func toItem(row models.CatalogProduct) catalog.Item {
	categories := make([]string, 0, len(row.Categories))
	for _, c := range row.Categories {
		categories = append(categories, c.Category)
	}
	colors := make([]string, 0, len(row.Colors))
	for _, c := range row.Colors {
		colors = append(colors, c.Color)
	}
	return catalog.Item{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Gender:      row.Gender,
		Categories:  categories,
		Colors:      colors,
		Rank:        row.Rank,
		Price:       row.Price,
		ImageURL:    row.ImageURL,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func fromItem(item catalog.Item) models.CatalogProduct {
	row := models.CatalogProduct{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Gender:      item.Gender,
		Rank:        item.Rank,
		Price:       item.Price,
		ImageURL:    item.ImageURL,
	}
	seen := map[string]struct{}{}
	for _, c := range item.Categories {
		if _, ok := seen[c]; ok || c == "" {
			continue
		}
		seen[c] = struct{}{}
		row.Categories = append(row.Categories, models.ProductCategory{ProductID: item.ID, Category: c})
	}
	seen = map[string]struct{}{}
	for _, c := range item.Colors {
		if _, ok := seen[c]; ok || c == "" {
			continue
		}
		seen[c] = struct{}{}
		row.Colors = append(row.Colors, models.ProductColor{ProductID: item.ID, Color: c})
	}
	return row
}
