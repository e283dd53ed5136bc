package schema

import (
	"time"

	"swiftcart/model"
)

type VendorCreate struct {
	UserID        uint    `json:"user_id" binding:"required"`
	StoreName     string  `json:"store_name" binding:"required,min=2,max=100"`
	StoreSlug     string  `json:"store_slug" binding:"required,min=2,max=100"`
	Address       string  `json:"address" binding:"required,min=5,max=255"`
	ContactNumber string  `json:"contact_number" binding:"required,min=7,max=20"`
	Description   *string `json:"description" binding:"omitempty,max=1000"`
	LogoURL       *string `json:"logo_url" binding:"omitempty,url"`
	BannerURL     *string `json:"banner_url" binding:"omitempty,url"`
}

type VendorRead struct {
	ID            uint       `json:"id"`
	UserID        uint       `json:"user_id"`
	StoreName     string     `json:"store_name"`
	StoreSlug     string     `json:"store_slug"`
	Address       string     `json:"address"`
	ContactNumber string     `json:"contact_number"`
	Description   *string    `json:"description"`
	LogoURL       *string    `json:"logo_url"`
	BannerURL     *string    `json:"banner_url"`
	IsApproved    bool       `json:"is_approved"`
	ApprovedAt    *time.Time `json:"approved_at"`
	Balance       float64    `json:"balance"`
	CreatedAt     time.Time  `json:"created_at"`
}

func NewVendorRead(v *model.Vendor) VendorRead {
	return VendorRead{
		ID:            v.ID,
		UserID:        v.UserID,
		StoreName:     v.StoreName,
		StoreSlug:     v.StoreSlug,
		Address:       v.Address,
		ContactNumber: v.ContactNumber,
		Description:   v.Description,
		LogoURL:       v.LogoURL,
		BannerURL:     v.BannerURL,
		IsApproved:    v.IsApproved,
		ApprovedAt:    v.ApprovedAt,
		Balance:       v.Balance,
		CreatedAt:     v.CreatedAt,
	}
}
