package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"campus_parking/internal/config"
	"campus_parking/internal/controllers"
	"campus_parking/internal/services"
)

// SetupRouter wires services, controllers and middleware onto a fresh
// engine. The DB handle is passed down explicitly; nothing here reads
// globals.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(ginlog.SetLogger())
	r.Use(gin.Recovery())

	authCtrl := controllers.NewAuthController(services.NewAuthService(db))
	vehicleCtrl := controllers.NewVehicleController(services.NewVehicleService(db))
	permitCtrl := controllers.NewPermitController(services.NewPermitService(db))
	citationCtrl := controllers.NewCitationController(services.NewCitationService(db))

	AuthRoutes(r, authCtrl)
	VehicleRoutes(r, vehicleCtrl)
	PermitRoutes(r, permitCtrl)
	CitationRoutes(r, citationCtrl)
	AdminRoutes(r, vehicleCtrl, citationCtrl)
	StaticRoutes(r, cfg.FrontendDir)

	return r
}
