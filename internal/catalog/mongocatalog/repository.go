package mongocatalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository implements catalog.Catalog on a mongo collection.
type Repository struct {
	coll *mongo.Collection
	now  func() time.Time
}

var _ catalog.Catalog = (*Repository)(nil)

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		coll: db.Collection(collectionName),
		now:  time.Now,
	}
}

// EnsureIndexes creates the text and rank-cursor indexes the feeds rely on.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: "text"}, {Key: "description", Value: "text"}},
			Options: options.Index().SetName("products_text"),
		},
		{
			Keys:    bson.D{{Key: "rank", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("products_rank_id"),
		},
		{
			Keys:    bson.D{{Key: "gender", Value: 1}},
			Options: options.Index().SetName("products_gender"),
		},
		{
			Keys:    bson.D{{Key: "categories", Value: 1}},
			Options: options.Index().SetName("products_categories"),
		},
	})
	if err != nil {
		return fmt.Errorf("create product indexes: %w", err)
	}
	return nil
}

func (r *Repository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]catalog.Item, error) {
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return toItems(docs)
}

func (r *Repository) FindByIDs(ctx context.Context, ids []string) ([]catalog.Item, error) {
	if len(ids) == 0 {
		return []catalog.Item{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *Repository) FindMatching(ctx context.Context, c catalog.Criteria) ([]catalog.Item, error) {
	if c.MatchesNothing() {
		return []catalog.Item{}, nil
	}
	return r.find(ctx, filterDocument(c))
}

func (r *Repository) Count(ctx context.Context, c catalog.Criteria) (int64, error) {
	if c.MatchesNothing() {
		return 0, nil
	}
	return r.coll.CountDocuments(ctx, filterDocument(c))
}

// Sample uses the $sample stage, which returns fewer than n documents when
// fewer match.
func (r *Repository) Sample(ctx context.Context, c catalog.Criteria, n int) ([]catalog.Item, error) {
	if c.MatchesNothing() || n <= 0 {
		return []catalog.Item{}, nil
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filterDocument(c)}},
		{{Key: "$sample", Value: bson.M{"size": n}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("sample products: %w", err)
	}
	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode sampled products: %w", err)
	}
	return toItems(docs)
}

func (r *Repository) ListByRank(ctx context.Context, c catalog.Criteria, limit int) ([]catalog.Item, error) {
	if c.MatchesNothing() || limit <= 0 {
		return []catalog.Item{}, nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "rank", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, filterDocument(c), opts)
}

func (r *Repository) RankOf(ctx context.Context, id string) (int, error) {
	var doc struct {
		Rank int `bson:"rank"`
	}
	opts := options.FindOne().SetProjection(bson.M{"rank": 1})
	err := r.coll.FindOne(ctx, bson.M{"_id": id}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, catalog.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return doc.Rank, nil
}

func (r *Repository) Create(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	doc := fromItem(*item, r.now().UTC())
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return catalog.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	item.CreatedAt = doc.CreatedAt
	item.UpdatedAt = doc.UpdatedAt
	return nil
}
