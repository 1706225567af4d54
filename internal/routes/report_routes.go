package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"civicfix/internal/controllers"
	"civicfix/internal/middleware"
)

func ReportRoutes(r *gin.Engine, ctrl *controllers.ReportController) {
	reports := r.Group("/api/reports")
	{
		reports.GET("", ctrl.ListReports)
		reports.GET("/geojson", ctrl.ReportsGeoJSON)
		reports.GET("/:id", ctrl.GetReport)
		reports.POST("", middleware.RateLimit(30, time.Minute), middleware.OptionalAuth(), ctrl.CreateReport)

		// Status writes come from ops tooling, not the public UI.
		reports.PATCH("/:id/status", middleware.RequireAuth(), ctrl.UpdateReportStatus)
	}
}
