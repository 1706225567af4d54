package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"civicfix/internal/models"
)

// List limits for GET /api/reports. Callers asking for more than MaxListLimit
// are silently capped.
const (
	DefaultListLimit = 500
	MaxListLimit     = 1000
)

// CreateReportInput carries a report submission. Latitude and Longitude are
// pointers so that a missing coordinate is distinguishable from 0.
type CreateReportInput struct {
	IssueType   string
	Description string
	Latitude    *float64
	Longitude   *float64
	Severity    *int
	Address     string
	UserID      *uint
	ImageURLs   []string
}

// ReportRepository owns durable storage of reports and their images.
type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func validateReportInput(in CreateReportInput) error {
	if in.IssueType == "" {
		return fmt.Errorf("%w: issueType is required", ErrValidation)
	}
	if in.Latitude == nil || in.Longitude == nil {
		return fmt.Errorf("%w: latitude and longitude are required", ErrValidation)
	}
	if in.Severity != nil && (*in.Severity < 1 || *in.Severity > 5) {
		return fmt.Errorf("%w: severity must be between 1 and 5", ErrValidation)
	}
	return nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// CreateReport persists a report and one image row per supplied URL in a
// single transaction, then reloads it with images and user attached.
func (r *ReportRepository) CreateReport(in CreateReportInput) (*models.Report, error) {
	if err := validateReportInput(in); err != nil {
		return nil, err
	}

	severity := 1
	if in.Severity != nil {
		severity = *in.Severity
	}

	report := models.Report{
		IssueType:   in.IssueType,
		Description: in.Description,
		Latitude:    *in.Latitude,
		Longitude:   *in.Longitude,
		Severity:    severity,
		Address:     in.Address,
		Status:      models.StatusReported,
		UserID:      in.UserID,
	}

	tx := r.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := tx.Create(&report).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, url := range in.ImageURLs {
		image := models.ReportImage{ReportID: report.ID, URL: url}
		if err := tx.Create(&image).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return r.GetReportByID(report.ID)
}

// GetReportByID returns the report with images and user reference, or
// ErrNotFound.
func (r *ReportRepository) GetReportByID(id uint) (*models.Report, error) {
	var report models.Report
	err := r.db.Preload("Images").Preload("User").First(&report, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: report %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports returns reports newest first, capped at MaxListLimit.
func (r *ReportRepository) ListReports(limit int) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Preload("Images").Preload("User").
		Order("created_at DESC").
		Limit(clampLimit(limit)).
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// ListReportsByUser returns a contributor's own reports, newest first.
func (r *ReportRepository) ListReportsByUser(userID uint) ([]models.Report, error) {
	var reports []models.Report
	err := r.db.Preload("Images").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// ListAttributedReportsSince returns reports that carry a user id, created at
// or after since. A zero since means no lower bound. Users are preloaded for
// the leaderboard join.
func (r *ReportRepository) ListAttributedReportsSince(since time.Time) ([]models.Report, error) {
	query := r.db.Preload("User").Where("user_id IS NOT NULL")
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}

	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateReportStatus persists a new status without validating the transition.
func (r *ReportRepository) UpdateReportStatus(id uint, status string) (*models.Report, error) {
	if !models.KnownStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	res := r.db.Model(&models.Report{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: report %d", ErrNotFound, id)
	}
	return r.GetReportByID(id)
}
