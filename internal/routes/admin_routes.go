package routes

import (
	"github.com/gin-gonic/gin"

	"campus_parking/internal/controllers"
	"campus_parking/internal/middleware"
)

func AdminRoutes(r *gin.Engine, vehicles *controllers.VehicleController, citations *controllers.CitationController) {
	admin := r.Group("/api")
	admin.Use(middleware.RequireAuthWithRole("admin"))
	{
		admin.GET("/all-vehicles", vehicles.ListAll)
		admin.GET("/all-citations", citations.ListAll)
		admin.POST("/citations", citations.Create)
		admin.PUT("/citations/:id", citations.Update)
		admin.DELETE("/citations/:id", citations.Delete)
	}
}
