package model

import (
	"time"
)

type Product struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	VendorID        uint       `json:"vendor_id" gorm:"index;not null"`
	Name            string     `json:"name" gorm:"size:100;not null"`
	Title           string     `json:"title" gorm:"size:100;not null"`
	Slug            string     `json:"slug" gorm:"size:120;uniqueIndex;not null"`
	Description     *string    `json:"description" gorm:"type:text"`
	Price           float64    `json:"price" gorm:"type:decimal(12,2);not null"`
	CompareAtPrice  *float64   `json:"compare_at_price" gorm:"type:decimal(12,2)"`
	FlashPrice      *float64   `json:"flash_price" gorm:"type:decimal(12,2)"`
	StockQuantity   int        `json:"stock_quantity" gorm:"not null;default:0"`
	// Defaulted to published by the create handler; a gorm-level default
	// would override an explicit false on insert.
	IsPublished     bool       `json:"is_published" gorm:"not null"`
	IsFlashSale     bool       `json:"is_flash_sale" gorm:"not null;default:false"`
	FlashSaleEndsAt *time.Time `json:"flash_sale_ends_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Images []ProductImage `json:"images,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string { return "products" }

// ProductImage keeps the image list ordered by Position.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID uint   `json:"product_id" gorm:"index;not null"`
	URL       string `json:"url" gorm:"size:500;not null"`
	Position  int    `json:"position" gorm:"not null;default:0"`
}

func (ProductImage) TableName() string { return "product_images" }
