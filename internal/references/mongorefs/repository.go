package mongorefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/angelmondragon/swipeshop-backend/internal/references"
	"github.com/angelmondragon/swipeshop-backend/pkg/enums"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "users"

// Repository keeps reference lists as arrays on the user document:
// liked_products and deleted_products.
type Repository struct {
	coll *mongo.Collection
}

var _ references.Store = (*Repository)(nil)

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(collectionName)}
}

func fieldFor(category enums.CollectionCategory) (string, error) {
	switch category {
	case enums.CollectionLiked:
		return "liked_products", nil
	case enums.CollectionDeleted:
		return "deleted_products", nil
	default:
		return "", fmt.Errorf("unknown collection category %q", category)
	}
}

// Add appends with $addToSet, so a present id keeps its position.
func (r *Repository) Add(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error {
	field, err := fieldFor(category)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{field: productID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("add %s reference: %w", category, err)
	}
	return nil
}

func (r *Repository) Remove(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error {
	field, err := fieldFor(category)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{field: productID}},
	)
	if err != nil {
		return fmt.Errorf("remove %s reference: %w", category, err)
	}
	return nil
}

func (r *Repository) ReadAll(ctx context.Context, userID string, category enums.CollectionCategory) ([]string, error) {
	field, err := fieldFor(category)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	err = r.coll.FindOne(ctx,
		bson.M{"_id": userID},
		options.FindOne().SetProjection(bson.M{field: 1}),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s references: %w", category, err)
	}
	return stringList(doc[field]), nil
}

// ReadWindow loads the whole array, which a single document bounds.
func (r *Repository) ReadWindow(ctx context.Context, userID string, category enums.CollectionCategory, amount int, cursor string, reversed bool) (references.Window, error) {
	list, err := r.ReadAll(ctx, userID, category)
	if err != nil {
		return references.Window{}, err
	}
	return references.WindowOf(list, cursor, amount, reversed)
}

func stringList(raw any) []string {
	values, ok := raw.(bson.A)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
