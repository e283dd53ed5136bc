package schema

import (
	"time"

	"swiftcart/model"
)

type ProductCreate struct {
	VendorID        uint       `json:"vendor_id" binding:"required"`
	Name            string     `json:"name" binding:"required,min=2,max=100"`
	Title           string     `json:"title" binding:"required,min=2,max=100"`
	Slug            string     `json:"slug" binding:"required,min=2,max=120"`
	Description     *string    `json:"description"`
	Price           float64    `json:"price" binding:"required,gt=0"`
	CompareAtPrice  *float64   `json:"compare_at_price" binding:"omitempty,gt=0"`
	FlashPrice      *float64   `json:"flash_price" binding:"omitempty,gt=0"`
	StockQuantity   int        `json:"stock_quantity" binding:"gte=0"`
	IsPublished     *bool      `json:"is_published"`
	IsFlashSale     bool       `json:"is_flash_sale"`
	FlashSaleEndsAt *time.Time `json:"flash_sale_ends_at"`
	Images          []string   `json:"images" binding:"omitempty,dive,url"`
}

type ProductUpdate struct {
	Name            *string    `json:"name" binding:"omitempty,min=2,max=100"`
	Title           *string    `json:"title" binding:"omitempty,min=2,max=100"`
	Description     *string    `json:"description"`
	Price           *float64   `json:"price" binding:"omitempty,gt=0"`
	CompareAtPrice  *float64   `json:"compare_at_price" binding:"omitempty,gt=0"`
	FlashPrice      *float64   `json:"flash_price" binding:"omitempty,gt=0"`
	StockQuantity   *int       `json:"stock_quantity" binding:"omitempty,gte=0"`
	IsPublished     *bool      `json:"is_published"`
	IsFlashSale     *bool      `json:"is_flash_sale"`
	FlashSaleEndsAt *time.Time `json:"flash_sale_ends_at"`
}

type ProductRead struct {
	ID              uint       `json:"id"`
	VendorID        uint       `json:"vendor_id"`
	Name            string     `json:"name"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Description     *string    `json:"description"`
	Price           float64    `json:"price"`
	CompareAtPrice  *float64   `json:"compare_at_price"`
	FlashPrice      *float64   `json:"flash_price"`
	StockQuantity   int        `json:"stock_quantity"`
	IsPublished     bool       `json:"is_published"`
	IsFlashSale     bool       `json:"is_flash_sale"`
	FlashSaleEndsAt *time.Time `json:"flash_sale_ends_at"`
	Images          []string   `json:"images"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewProductRead(p *model.Product) ProductRead {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.URL)
	}
	return ProductRead{
		ID:              p.ID,
		VendorID:        p.VendorID,
		Name:            p.Name,
		Title:           p.Title,
		Slug:            p.Slug,
		Description:     p.Description,
		Price:           p.Price,
		CompareAtPrice:  p.CompareAtPrice,
		FlashPrice:      p.FlashPrice,
		StockQuantity:   p.StockQuantity,
		IsPublished:     p.IsPublished,
		IsFlashSale:     p.IsFlashSale,
		FlashSaleEndsAt: p.FlashSaleEndsAt,
		Images:          images,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
