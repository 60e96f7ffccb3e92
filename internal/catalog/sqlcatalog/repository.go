package sqlcatalog

import (
	"context"
	"errors"
	"strings"

	"github.com/angelmondragon/swipeshop-backend/internal/catalog"
	"github.com/angelmondragon/swipeshop-backend/internal/repo"
	"github.com/angelmondragon/swipeshop-backend/pkg/db"
	"github.com/angelmondragon/swipeshop-backend/pkg/db/models"
	"gorm.io/gorm"
)

const (
	categoryExistsClause = "EXISTS (SELECT 1 FROM product_categories pc WHERE pc.product_id = products.id AND LOWER(pc.category) IN ?)"
	colorExistsPrefix    = "EXISTS (SELECT 1 FROM product_colors pcl WHERE pcl.product_id = products.id AND ("
	searchClause         = `(LOWER(products.name) LIKE ? ESCAPE '\' OR LOWER(products.description) LIKE ? ESCAPE '\')`
	colorClause          = `LOWER(pcl.color) LIKE ? ESCAPE '\'`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches value literally anywhere in the column.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

// Repository implements catalog.Catalog on gorm (postgres or sqlite).
type Repository struct {
	repo.Base
}

var _ catalog.Catalog = (*Repository)(nil)

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) query(ctx context.Context, c catalog.Criteria) *gorm.DB {
	return applyCriteria(r.DB(ctx).Model(&models.CatalogProduct{}), c)
}

func (r *Repository) withTags(q *gorm.DB) *gorm.DB {
	return q.Preload("Categories").Preload("Colors")
}

func applyCriteria(q *gorm.DB, c catalog.Criteria) *gorm.DB {
	if ids, ok := c.RestrictedIDs(); ok {
		q = q.Where("products.id IN ?", ids)
	}
	if excluded := c.ExcludedIDs(); len(excluded) > 0 {
		q = q.Where("products.id NOT IN ?", excluded)
	}
	if rank, ok := c.RankBound(); ok {
		q = q.Where("products.rank < ?", rank)
	}

	f := c.Filter()
	if len(f.Genders) > 0 {
		q = q.Where("LOWER(products.gender) IN ?", f.Genders)
	}
	if len(f.Categories) > 0 {
		q = q.Where(categoryExistsClause, f.Categories)
	}
	if len(f.Colors) > 0 {
		clauses := make([]string, 0, len(f.Colors))
		args := make([]any, 0, len(f.Colors))
		for _, color := range f.Colors {
			clauses = append(clauses, colorClause)
			args = append(args, containsPattern(color))
		}
		q = q.Where(colorExistsPrefix+strings.Join(clauses, " OR ")+"))", args...)
	}
	if f.Search != "" {
		like := containsPattern(f.Search)
		q = q.Where(searchClause, like, like)
	}
	return q
}

// FindByIDs loads the products with the given ids.
func (r *Repository) FindByIDs(ctx context.Context, ids []string) ([]catalog.Item, error) {
	if len(ids) == 0 {
		return []catalog.Item{}, nil
	}
	var rows []models.CatalogProduct
	if err := r.withTags(r.DB(ctx)).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toItems(rows), nil
}

// FindMatching loads every product satisfying c.
func (r *Repository) FindMatching(ctx context.Context, c catalog.Criteria) ([]catalog.Item, error) {
	if c.MatchesNothing() {
		return []catalog.Item{}, nil
	}
	var rows []models.CatalogProduct
	if err := r.withTags(r.query(ctx, c)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toItems(rows), nil
}

// Count returns how many products satisfy c.
func (r *Repository) Count(ctx context.Context, c catalog.Criteria) (int64, error) {
	if c.MatchesNothing() {
		return 0, nil
	}
	var total int64
	if err := r.query(ctx, c).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Sample draws up to n random products satisfying c.
func (r *Repository) Sample(ctx context.Context, c catalog.Criteria, n int) ([]catalog.Item, error) {
	if c.MatchesNothing() || n <= 0 {
		return []catalog.Item{}, nil
	}
	var rows []models.CatalogProduct
	if err := r.withTags(r.query(ctx, c)).Order("RANDOM()").Limit(n).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toItems(rows), nil
}

// ListByRank returns up to limit products ordered by rank then id, both descending.
func (r *Repository) ListByRank(ctx context.Context, c catalog.Criteria, limit int) ([]catalog.Item, error) {
	if c.MatchesNothing() || limit <= 0 {
		return []catalog.Item{}, nil
	}
	var rows []models.CatalogProduct
	err := r.withTags(r.query(ctx, c)).
		Order("products.rank DESC").
		Order("products.id DESC").
		Limit(limit).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return toItems(rows), nil
}

// RankOf returns the persisted rank of a product.
func (r *Repository) RankOf(ctx context.Context, id string) (int, error) {
	var row models.CatalogProduct
	err := r.DB(ctx).Select("id", "rank").Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, catalog.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return row.Rank, nil
}

// Create inserts the product together with its category and color tags.
func (r *Repository) Create(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	row := fromItem(*item)
	err := r.WithTx(ctx, func(tx repo.Base) error {
		return tx.DB(ctx).Create(&row).Error
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return catalog.ErrDuplicate
		}
		return err
	}
	item.CreatedAt = row.CreatedAt
	item.UpdatedAt = row.UpdatedAt
	return nil
}
