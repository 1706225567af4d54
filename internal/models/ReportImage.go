package models

import (
	"time"

	"gorm.io/gorm"
)

// ReportImage is a photo attached to a report. Rows are created in the same
// transaction as their parent report and cascade-deleted with it.
type ReportImage struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	ReportID uint   `json:"reportId" gorm:"index;not null"`
	URL      string `json:"url" gorm:"not null"`
}
