package routes

import (
	"github.com/gin-gonic/gin"

	"campus_parking/internal/controllers"
	"campus_parking/internal/middleware"
)

func PermitRoutes(r *gin.Engine, ctrl *controllers.PermitController) {
	// The grade lookup is public so the signup/purchase pages can
	// render prices before login
	r.GET("/api/permit-grades", ctrl.ListGrades)

	permit := r.Group("/api")
	permit.Use(middleware.RequireAuth())
	{
		permit.POST("/permits", ctrl.Create)
		permit.GET("/permits/:uid", ctrl.ListByUID)
	}
}
