package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered contributor. Reports may also be submitted anonymously,
// in which case no User row is involved.
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Email        string `json:"email" gorm:"unique;not null"`
	PasswordHash string `json:"-" gorm:"not null"`
	DisplayName  string `json:"displayName"`

	// Optional profile metadata, surfaced on the leaderboard and profile pages.
	City   *string `json:"city,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`

	Reports []Report `json:"reports,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}
