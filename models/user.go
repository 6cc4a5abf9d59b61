package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              string     `json:"id" gorm:"type:uuid;primarykey"`
	Email           string     `json:"email" gorm:"uniqueIndex;not null"`
	Password        string     `json:"-" gorm:"not null"`
	Name            *string    `json:"name"`
	Image           *string    `json:"image"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "reno_users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// VerificationToken is a one-time email verification token. At most one
// active token exists per email; a new registration replaces the old one.
type VerificationToken struct {
	Identifier string    `json:"identifier" gorm:"primarykey"` // email address
	Token      string    `json:"token" gorm:"primarykey"`
	Expires    time.Time `json:"expires" gorm:"not null"`
}

func (VerificationToken) TableName() string {
	return "reno_verification_tokens"
}
