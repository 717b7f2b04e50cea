package main

import (
	"log"
	"net/http"

	"campus_parking/internal/config"
	"campus_parking/internal/database"
	"campus_parking/internal/logger"
	"campus_parking/internal/middleware"
	"campus_parking/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.Load()

	// Connect to the database; the handle is passed down, never global
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	// Setup Gin router
	r := routes.SetupRouter(db, cfg)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Println("🚀 Server running at :" + cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
