package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campus_parking/internal/controllers"
)

func AuthRoutes(r *gin.Engine, ctrl *controllers.AuthController) {
	api := r.Group("/api")
	{
		api.POST("/signup", ctrl.Signup)
		api.POST("/login", ctrl.Login)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":    "Server is running",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
		})
	}
}
