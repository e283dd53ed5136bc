package model

import (
	"time"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleVendor   UserRole = "vendor"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FirstName    string    `json:"first_name" gorm:"size:50;not null"`
	LastName     string    `json:"last_name" gorm:"size:50;not null"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	AvatarURL    *string   `json:"avatar_url" gorm:"size:500"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false"`
	Role         UserRole  `json:"role" gorm:"size:20;default:'customer'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Vendor *Vendor `json:"vendor,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }
