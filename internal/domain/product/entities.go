package product

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound        = errors.New("product not found")
	ErrInvalidCategory = errors.New("invalid product category")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
)

type Category string

const (
	CategoryUniform   Category = "UNIFORM"
	CategoryRing      Category = "RING"
	CategoryBible     Category = "BIBLE"
	CategoryPerfume   Category = "PERFUME"
	CategoryAccessory Category = "ACCESSORY"
	CategoryOther     Category = "OTHER"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryUniform, CategoryRing, CategoryBible, CategoryPerfume, CategoryAccessory, CategoryOther:
		return true
	}
	return false
}

// Sizes is stored as a comma separated column.
type Sizes string

func JoinSizes(list []string) Sizes {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return Sizes(strings.Join(out, ","))
}

func (s Sizes) List() []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(string(s), ",")
}

// Table: products
//
// in_stock has no column default; gorm would drop an explicit false on insert.
type Product struct {
	ID            uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID     string    `gorm:"column:product_id;size:32;not null;uniqueIndex:ux_products_product_id"`
	Name          string    `gorm:"column:name;size:191;not null"`
	Description   string    `gorm:"column:description;type:text;not null"`
	Category      Category  `gorm:"column:category;size:16;not null;index:idx_products_category"`
	Price         float64   `gorm:"column:price;type:decimal(18,2);not null"`
	Currency      string    `gorm:"column:currency;size:3;not null;default:USD"`
	ImageURL      string    `gorm:"column:image_url;type:text"`
	InStock       bool      `gorm:"column:in_stock;not null;index:idx_products_in_stock"`
	StockQuantity int       `gorm:"column:stock_quantity;not null;default:0"`
	Sizes         Sizes     `gorm:"column:sizes;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
