package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"civicfix/internal/controllers"
	"civicfix/internal/middleware"
)

func AuthRoutes(r *gin.Engine, ctrl *controllers.AuthController) {
	auth := r.Group("/api/auth")
	auth.Use(middleware.RateLimit(10, time.Minute))
	{
		auth.POST("/signup", ctrl.Signup)
		auth.POST("/signin", ctrl.Signin)
	}
}
