package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"civicfix/internal/controllers"
	"civicfix/internal/leaderboard"
	"civicfix/internal/repository"
)

// SetupRouter wires repositories and controllers and registers every route
// group. Middleware is attached before registration so it covers all routes.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	reports := repository.NewReportRepository(db)
	users := repository.NewUserRepository(db)

	reportCtrl := controllers.NewReportController(reports)
	authCtrl := controllers.NewAuthController(users)
	leaderboardCtrl := controllers.NewLeaderboardController(leaderboard.New(reports))
	profileCtrl := controllers.NewProfileController(users, reports)

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	AuthRoutes(r, authCtrl)
	ReportRoutes(r, reportCtrl)
	LeaderboardRoutes(r, leaderboardCtrl)
	ProfileRoutes(r, profileCtrl)

	return r
}
