package schema

import (
	"errors"
	"time"
	"unicode"

	"swiftcart/model"
)

type UserCreate struct {
	FirstName string         `json:"first_name" binding:"required,min=2,max=50"`
	LastName  string         `json:"last_name" binding:"required,min=2,max=50"`
	Email     string         `json:"email" binding:"required,email"`
	Password  string         `json:"password" binding:"required,min=8,max=100"`
	Role      model.UserRole `json:"role" binding:"omitempty,oneof=customer vendor admin"`
}

// ValidatePassword enforces the character-class rules that binding tags
// cannot express. Only the first failing rule is reported.
func (u UserCreate) ValidatePassword() error {
	var hasUpper, hasLower, hasDigit bool
	for _, c := range u.Password {
		switch {
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsDigit(c):
			hasDigit = true
		}
	}
	if !hasUpper {
		return errors.New("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return errors.New("password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return errors.New("password must contain at least one digit")
	}
	return nil
}

type UserRead struct {
	ID         uint           `json:"id"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Email      string         `json:"email"`
	Role       model.UserRole `json:"role"`
	IsVerified bool           `json:"is_verified"`
	AvatarURL  *string        `json:"avatar_url"`
	CreatedAt  time.Time      `json:"created_at"`
}

// NewUserRead projects a persisted user, never exposing the password hash.
func NewUserRead(u *model.User) UserRead {
	return UserRead{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		AvatarURL:  u.AvatarURL,
		CreatedAt:  u.CreatedAt,
	}
}
