package routes

import (
	"github.com/gin-gonic/gin"

	"campus_parking/internal/controllers"
	"campus_parking/internal/middleware"
)

func VehicleRoutes(r *gin.Engine, ctrl *controllers.VehicleController) {
	vehicle := r.Group("/api")
	vehicle.Use(middleware.RequireAuth())
	{
		vehicle.POST("/vehicles", ctrl.Create)
		vehicle.GET("/vehicles/:uid", ctrl.ListByUID)
		vehicle.GET("/vehicle/:vehicle_id", ctrl.Get)
		vehicle.PUT("/vehicles/:vehicle_id", ctrl.Update)
		vehicle.DELETE("/vehicles/:vehicle_id", ctrl.Delete)
	}
}
