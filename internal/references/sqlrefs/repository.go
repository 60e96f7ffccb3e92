package sqlrefs

import (
	"context"
	"errors"

	"github.com/angelmondragon/swipeshop-backend/internal/references"
	"github.com/angelmondragon/swipeshop-backend/internal/repo"
	"github.com/angelmondragon/swipeshop-backend/pkg/db/models"
	"github.com/angelmondragon/swipeshop-backend/pkg/enums"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository stores reference lists as rows ordered by their serial id.
type Repository struct {
	repo.Base
}

var _ references.Store = (*Repository)(nil)

// NewRepository constructs a reference repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

func (r *Repository) list(ctx context.Context, userID string, category enums.CollectionCategory) *gorm.DB {
	return r.DB(ctx).
		Model(&models.ProductReference{}).
		Where("user_id = ? AND category = ?", userID, category)
}

// Add inserts the reference and ignores duplicates.
func (r *Repository) Add(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error {
	if userID == "" || productID == "" || !category.IsValid() {
		return gorm.ErrInvalidValue
	}
	row := models.ProductReference{
		UserID:    userID,
		Category:  category,
		ProductID: productID,
	}
	return r.DB(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).
		Error
}

// Remove deletes the reference if it exists.
func (r *Repository) Remove(ctx context.Context, userID string, category enums.CollectionCategory, productID string) error {
	return r.DB(ctx).
		Where("user_id = ? AND category = ? AND product_id = ?", userID, category, productID).
		Delete(&models.ProductReference{}).
		Error
}

// ReadAll returns every product id in insertion order.
func (r *Repository) ReadAll(ctx context.Context, userID string, category enums.CollectionCategory) ([]string, error) {
	ids := []string{}
	if err := r.list(ctx, userID, category).Order("id ASC").Pluck("product_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// ReadWindow counts the list, locates the cursor position and reads only
// the rows inside the window.
func (r *Repository) ReadWindow(ctx context.Context, userID string, category enums.CollectionCategory, amount int, cursor string, reversed bool) (references.Window, error) {
	var total int64
	if err := r.list(ctx, userID, category).Count(&total).Error; err != nil {
		return references.Window{}, err
	}

	cursorIndex := -1
	if cursor != "" {
		idx, err := r.positionOf(ctx, userID, category, cursor)
		if err != nil {
			return references.Window{}, err
		}
		cursorIndex = idx
	}

	start, end := references.Bounds(int(total), cursorIndex, amount, reversed)
	ids := []string{}
	if end > start {
		err := r.list(ctx, userID, category).
			Order("id ASC").
			Offset(start).
			Limit(end-start).
			Pluck("product_id", &ids).
			Error
		if err != nil {
			return references.Window{}, err
		}
	}

	return references.Window{
		IDs:         ids,
		Total:       int(total),
		CursorIndex: cursorIndex,
		Start:       start,
	}, nil
}

func (r *Repository) positionOf(ctx context.Context, userID string, category enums.CollectionCategory, productID string) (int, error) {
	var row models.ProductReference
	err := r.list(ctx, userID, category).
		Select("id").
		Where("product_id = ?", productID).
		Take(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return -1, references.ErrCursorNotFound
	}
	if err != nil {
		return -1, err
	}

	var before int64
	if err := r.list(ctx, userID, category).Where("id < ?", row.ID).Count(&before).Error; err != nil {
		return -1, err
	}
	return int(before), nil
}
