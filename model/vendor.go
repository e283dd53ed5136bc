package model

import (
	"time"
)

type Vendor struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	UserID        uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	StoreName     string     `json:"store_name" gorm:"size:100;not null"`
	StoreSlug     string     `json:"store_slug" gorm:"size:100;uniqueIndex;not null"`
	Address       string     `json:"address" gorm:"size:255;not null"`
	ContactNumber string     `json:"contact_number" gorm:"size:20;not null"`
	Description   *string    `json:"description" gorm:"size:1000"`
	LogoURL       *string    `json:"logo_url" gorm:"size:500"`
	BannerURL     *string    `json:"banner_url" gorm:"size:500"`
	IsApproved    bool       `json:"is_approved" gorm:"default:false"`
	ApprovedAt    *time.Time `json:"approved_at"`
	// Monetary balance; no non-negativity constraint at the schema level.
	Balance   float64   `json:"balance" gorm:"type:decimal(12,2);not null;default:0.00"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Products []Product `json:"products,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (Vendor) TableName() string { return "vendors" }
