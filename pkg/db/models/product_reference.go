package models

import (
	"time"

	"github.com/angelmondragon/swipeshop-backend/pkg/enums"
)

// ProductReference places a product in a user's liked or deleted list.
// ID is monotonically assigned and doubles as the list position.
type ProductReference struct {
	ID        uint64                   `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string                   `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:product_references_user_category_product_key,priority:1"`
	Category  enums.CollectionCategory `gorm:"column:category;type:varchar(16);not null;uniqueIndex:product_references_user_category_product_key,priority:2"`
	ProductID string                   `gorm:"column:product_id;type:varchar(64);not null;uniqueIndex:product_references_user_category_product_key,priority:3"`
	CreatedAt time.Time                `gorm:"column:created_at;autoCreateTime"`
}

func (ProductReference) TableName() string { return "product_references" }
