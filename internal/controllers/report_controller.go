package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"civicfix/internal/middleware"
	"civicfix/internal/models"
	"civicfix/internal/repository"
)

// ReportStore is the repository surface the report endpoints need.
type ReportStore interface {
	CreateReport(in repository.CreateReportInput) (*models.Report, error)
	GetReportByID(id uint) (*models.Report, error)
	ListReports(limit int) ([]models.Report, error)
	ListReportsByUser(userID uint) ([]models.Report, error)
	UpdateReportStatus(id uint, status string) (*models.Report, error)
}

type ReportController struct {
	store ReportStore
}

func NewReportController(store ReportStore) *ReportController {
	return &ReportController{store: store}
}

// userStub is the minimal user reference embedded in report responses.
type userStub struct {
	ID          uint   `json:"id"`
	DisplayName string `json:"displayName"`
}

type imageResponse struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

// reportResponse mirrors models.Report with images flattened and the user
// reduced to a stub, so account fields never leak through preloads.
type reportResponse struct {
	ID          uint            `json:"id"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	IssueType   string          `json:"issueType"`
	Description string          `json:"description"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Severity    int             `json:"severity"`
	Address     string          `json:"address"`
	Status      string          `json:"status"`
	UserID      *uint           `json:"userId"`
	User        *userStub       `json:"user"`
	Images      []imageResponse `json:"images"`
}

func toReportResponse(report models.Report) reportResponse {
	resp := reportResponse{
		ID:          report.ID,
		CreatedAt:   report.CreatedAt,
		UpdatedAt:   report.UpdatedAt,
		IssueType:   report.IssueType,
		Description: report.Description,
		Latitude:    report.Latitude,
		Longitude:   report.Longitude,
		Severity:    report.Severity,
		Address:     report.Address,
		Status:      report.Status,
		UserID:      report.UserID,
		Images:      make([]imageResponse, 0, len(report.Images)),
	}
	for _, image := range report.Images {
		resp.Images = append(resp.Images, imageResponse{ID: image.ID, URL: image.URL})
	}
	if report.User != nil {
		resp.User = &userStub{ID: report.User.ID, DisplayName: report.User.DisplayName}
	}
	return resp
}

// CreateReport handles POST /api/reports. Anonymous submissions are allowed;
// when a valid token accompanies the request its user id wins over the body.
func (rc *ReportController) CreateReport(c *gin.Context) {
	var input struct {
		IssueType   string   `json:"issueType" binding:"required"`
		Description string   `json:"description"`
		Latitude    *float64 `json:"latitude" binding:"required"`
		Longitude   *float64 `json:"longitude" binding:"required"`
		Severity    *int     `json:"severity"`
		Address     string   `json:"address"`
		UserID      *uint    `json:"userId"`
		ImageURLs   []string `json:"imageUrls"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		logrus.WithError(err).Warn("CreateReport: invalid input payload")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if id, ok := middleware.CurrentUserID(c); ok {
		input.UserID = &id
	}

	report, err := rc.store.CreateReport(repository.CreateReportInput{
		IssueType:   input.IssueType,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Severity:    input.Severity,
		Address:     input.Address,
		UserID:      input.UserID,
		ImageURLs:   input.ImageURLs,
	})
	if err != nil {
		if errors.Is(err, repository.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logrus.WithError(err).Error("CreateReport: storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, toReportResponse(*report))
}

// ListReports handles GET /api/reports?limit=N, newest first. The repository
// applies the default and the hard cap.
func (rc *ReportController) ListReports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	reports, err := rc.store.ListReports(limit)
	if err != nil {
		logrus.WithError(err).Error("ListReports: storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	responses := make([]reportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, toReportResponse(report))
	}
	c.JSON(http.StatusOK, responses)
}

// GetReport handles GET /api/reports/:id.
func (rc *ReportController) GetReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	report, err := rc.store.GetReportByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		logrus.WithError(err).Error("GetReport: storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch report"})
		return
	}

	c.JSON(http.StatusOK, toReportResponse(*report))
}

// UpdateReportStatus handles PATCH /api/reports/:id/status. Transitions are
// not validated; any known status value is persisted as written.
func (rc *ReportController) UpdateReportStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	report, err := rc.store.UpdateReportStatus(uint(id), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		default:
			logrus.WithError(err).Error("UpdateReportStatus: storage failure")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		}
		return
	}

	c.JSON(http.StatusOK, toReportResponse(*report))
}

// ReportsGeoJSON handles GET /api/reports/geojson: every report as a point
// feature, the feed consumed by the map widget.
func (rc *ReportController) ReportsGeoJSON(c *gin.Context) {
	reports, err := rc.store.ListReports(repository.MaxListLimit)
	if err != nil {
		logrus.WithError(err).Error("ReportsGeoJSON: storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	fc := geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(reports))}
	for _, report := range reports {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       strconv.FormatUint(uint64(report.ID), 10),
			Geometry: geom.NewPointFlat(geom.XY, []float64{report.Longitude, report.Latitude}),
			Properties: map[string]interface{}{
				"issueType": report.IssueType,
				"status":    report.Status,
				"severity":  report.Severity,
				"createdAt": report.CreatedAt,
			},
		})
	}

	c.JSON(http.StatusOK, &fc)
}
