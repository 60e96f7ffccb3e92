package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogProduct is a swipeable catalog entry.
type CatalogProduct struct {
	ID          string            `gorm:"column:id;type:varchar(64);primaryKey"`
	Name        string            `gorm:"column:name;not null"`
	Description string            `gorm:"column:description;not null;default:''"`
	Gender      string            `gorm:"column:gender;type:varchar(32);not null;default:''"`
	Rank        int               `gorm:"column:rank;not null;index:idx_products_rank_id,priority:1"`
	Price       decimal.Decimal   `gorm:"column:price;type:numeric(12,2);not null;default:0"`
	ImageURL    string            `gorm:"column:image_url;not null;default:''"`
	Categories  []ProductCategory `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Colors      []ProductColor    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (CatalogProduct) TableName() string { return "products" }

// ProductCategory is one category tag of a product.
type ProductCategory struct {
	ProductID string `gorm:"column:product_id;type:varchar(64);primaryKey"`
	Category  string `gorm:"column:category;type:varchar(64);primaryKey"`
}

func (ProductCategory) TableName() string { return "product_categories" }

// ProductColor is one color tag of a product.
type ProductColor struct {
	ProductID string `gorm:"column:product_id;type:varchar(64);primaryKey"`
	Color     string `gorm:"column:color;type:varchar(64);primaryKey"`
}

func (ProductColor) TableName() string { return "product_colors" }
