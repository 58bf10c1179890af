package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// UserType distinguishes the account roles on the platform.
type UserType string

const (
	UserTypeParent  UserType = "parent"
	UserTypeTeacher UserType = "teacher"
	UserTypeAdmin   UserType = "admin"
)

type User struct {
	gorm.Model `json:"-"`
	ID         uint     `json:"id" gorm:"primaryKey"`
	Name       string   `json:"name"`
	Email      string   `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all users
	Password   string   `json:"-"`                        // Store hashed password, ignore for JSON serialization
	UserType   UserType `json:"user_type" gorm:"size:10;default:parent"`
	Bio        string   `json:"bio" gorm:"size:500"`
	AvatarURL  string   `json:"avatar_url,omitempty"`
}

// UserCompact is the slim user shape embedded in enriched feed and
// notification responses.
type UserCompact struct {
	ID        uint     `json:"id"`
	Name      string   `json:"name"`
	UserType  UserType `json:"user_type"`
	AvatarURL string   `json:"avatar_url,omitempty"`
}

// ToCompact converts a User to its compact representation.
func (u *User) ToCompact() UserCompact {
	return UserCompact{
		ID:        u.ID,
		Name:      u.Name,
		UserType:  u.UserType,
		AvatarURL: u.AvatarURL,
	}
}

// Child is a child record tied to a parent account.
type Child struct {
	gorm.Model
	ParentID    uint      `json:"parent_id" gorm:"index"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	PhotoURL    string    `json:"photo_url,omitempty"`
}

// Age returns the child's age in whole years at the given time.
func (c *Child) Age(now time.Time) int {
	years := now.Year() - c.DateOfBirth.Year()
	if now.Month() < c.DateOfBirth.Month() ||
		(now.Month() == c.DateOfBirth.Month() && now.Day() < c.DateOfBirth.Day()) {
		years--
	}
	return years
}

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	UserType string `json:"user_type,omitempty" validate:"omitempty,oneof=parent teacher admin"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Name      string `json:"name,omitempty" validate:"omitempty,min=2,max=50"`
	Bio       string `json:"bio,omitempty" validate:"omitempty,max=500"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type CreateChildRequest struct {
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required"`
	PhotoURL    string    `json:"photo_url,omitempty"`
}

type UpdateChildRequest struct {
	Name        string     `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	PhotoURL    string     `json:"photo_url,omitempty"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}
