package routes

import (
	"github.com/gin-gonic/gin"

	"civicfix/internal/controllers"
)

func LeaderboardRoutes(r *gin.Engine, ctrl *controllers.LeaderboardController) {
	r.GET("/api/leaderboard", ctrl.GetLeaderboard)
}
