package routes

import (
	"github.com/gin-gonic/gin"

	"civicfix/internal/controllers"
	"civicfix/internal/middleware"
)

func ProfileRoutes(r *gin.Engine, ctrl *controllers.ProfileController) {
	me := r.Group("/api")
	me.Use(middleware.RequireAuth())
	{
		me.GET("/profile", ctrl.GetProfile)
		me.GET("/me/reports", ctrl.MyReports)
	}
}
