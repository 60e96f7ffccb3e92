package mongocatalog

import (
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilterDocumentEmpty(t *testing.T) {
	assert.Empty(t, filterDocument(catalog.Where(catalog.Filter{})))
	assert.Empty(t, filterDocument(catalog.Where(catalog.Filter{}).IDsNotIn(nil)))
}

func TestFilterDocumentIDs(t *testing.T) {
	doc := filterDocument(catalog.Where(catalog.Filter{}).IDsIn([]string{"a"}).IDsNotIn([]string{"b", "c"}))
	assert.Equal(t, bson.M{"$in": []string{"a"}, "$nin": []string{"b", "c"}}, doc["_id"])
}

func TestFilterDocumentPredicates(t *testing.T) {
	f := catalog.NewFilter([]string{"Men"}, []string{"Jackets"}, []string{"navy.blue"}, "rain shell")
	doc := filterDocument(catalog.Where(f).RankBelow(300))

	assert.Equal(t, bson.M{"$lt": 300}, doc["rank"])
	assert.Equal(t, bson.M{"$in": []primitive.Regex{{Pattern: "^men$", Options: "i"}}}, doc["gender"])
	assert.Equal(t, bson.M{"$in": []primitive.Regex{{Pattern: "^jackets$", Options: "i"}}}, doc["categories"])
	assert.Equal(t, bson.M{"$in": []primitive.Regex{{Pattern: `navy\.blue`, Options: "i"}}}, doc["colors"])
	assert.Equal(t, bson.M{"$search": "rain shell"}, doc["$text"])
}

func TestDocumentRoundTripKeepsPrice(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	item := catalog.Item{
		ID:    "p-1",
		Name:  "Scarf",
		Rank:  42,
		Price: decimal.RequireFromString("19.99"),
	}
	doc := fromItem(item, now)
	require.Equal(t, "19.99", doc.Price)
	require.NotNil(t, doc.Categories)
	require.NotNil(t, doc.Colors)

	back, err := doc.toItem()
	require.NoError(t, err)
	require.True(t, item.Price.Equal(back.Price))
	require.Equal(t, 42, back.Rank)
	require.Equal(t, now, back.CreatedAt)
}

func TestToItemsRejectsUnparseablePrice(t *testing.T) {
	docs := []productDocument{
		{ID: "p-1", Price: "12.50"},
		{ID: "p-2", Price: "twelve"},
	}
	items, err := toItems(docs)
	if err == nil {
		t.Fatalf("expected price error, got items %v", items)
	}
	if !strings.Contains(err.Error(), "p-2") {
		t.Fatalf("error should name the product: %v", err)
	}

	items, err = toItems(docs[:1])
	if err != nil {
		t.Fatalf("toItems: %v", err)
	}
	if len(items) != 1 || !items[0].Price.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("unexpected items %+v", items)
	}
}
