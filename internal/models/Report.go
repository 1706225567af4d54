package models

import (
	"time"

	"gorm.io/gorm"
)

// Issue types accepted from the report form.
const (
	IssuePothole     = "pothole"
	IssueDamagedRoad = "damaged_road"
	IssueDebris      = "debris"
	IssueSignage     = "signage"
	IssueOther       = "other"
)

// Report statuses. Transitions are driven by ops tooling; the repository
// persists any known value without validating the progression.
const (
	StatusReported   = "reported"
	StatusInProgress = "in_progress"
	StatusFixed      = "fixed"
	StatusClosed     = "closed"
)

// KnownStatus reports whether s is one of the recognised report statuses.
func KnownStatus(s string) bool {
	switch s {
	case StatusReported, StatusInProgress, StatusFixed, StatusClosed:
		return true
	}
	return false
}

// Report is a single community issue submission pinned to a coordinate.
// UserID is nil for anonymous submissions.
type Report struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	IssueType   string  `json:"issueType" gorm:"not null"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude" gorm:"not null"`
	Longitude   float64 `json:"longitude" gorm:"not null"`
	Severity    int     `json:"severity" gorm:"default:1"`
	Address     string  `json:"address"`
	Status      string  `json:"status" gorm:"default:reported"`

	UserID *uint `json:"userId" gorm:"index"`
	User   *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`

	Images []ReportImage `json:"images,omitempty" gorm:"foreignKey:ReportID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
