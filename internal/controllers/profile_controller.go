package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"civicfix/internal/middleware"
	"civicfix/internal/models"
)

type ProfileController struct {
	users   UserStore
	reports ReportStore
}

func NewProfileController(users UserStore, reports ReportStore) *ProfileController {
	return &ProfileController{users: users, reports: reports}
}

// GetProfile handles GET /api/profile: the caller's account plus contribution
// stats derived from their reports.
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := pc.users.FindUserByID(userID)
	if err != nil {
		logrus.WithError(err).Error("GetProfile: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	reports, err := pc.reports.ListReportsByUser(userID)
	if err != nil {
		logrus.WithError(err).Error("GetProfile: report lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	total := len(reports)
	fixed := 0
	for _, report := range reports {
		if report.Status == models.StatusFixed {
			fixed++
		}
	}
	fixedRate := 0.0
	if total > 0 {
		fixedRate = float64(fixed) / float64(total)
	}

	c.JSON(http.StatusOK, gin.H{
		"userId":       user.ID,
		"displayName":  user.DisplayName,
		"avatar":       user.Avatar,
		"bio":          user.Bio,
		"location":     user.City,
		"totalReports": total,
		"fixedRate":    fixedRate,
	})
}

// MyReports handles GET /api/me/reports: the caller's own submissions,
// newest first.
func (pc *ProfileController) MyReports(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	reports, err := pc.reports.ListReportsByUser(userID)
	if err != nil {
		logrus.WithError(err).Error("MyReports: storage failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	responses := make([]reportResponse, 0, len(reports))
	for _, report := range reports {
		responses = append(responses, toReportResponse(report))
	}
	c.JSON(http.StatusOK, responses)
}
