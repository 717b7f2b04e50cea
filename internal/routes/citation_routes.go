package routes

import (
	"github.com/gin-gonic/gin"

	"campus_parking/internal/controllers"
	"campus_parking/internal/middleware"
)

func CitationRoutes(r *gin.Engine, ctrl *controllers.CitationController) {
	citation := r.Group("/api")
	citation.Use(middleware.RequireAuth())
	{
		citation.GET("/citations/:uid", ctrl.ListByUID)
		citation.POST("/citations/:id/pay", ctrl.Pay)
	}
}
