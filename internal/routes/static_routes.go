package routes

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// pageFiles maps each logical path to the prebuilt HTML page serving
// it. No templating; the frontend talks to /api with fetch.
var pageFiles = map[string]string{
	"/":                "main.html",
	"/signup":          "signUp.html",
	"/dashboard":       "userDashboard.html",
	"/vehicles":        "viewVehicles.html",
	"/add-vehicle":     "addVehicle.html",
	"/edit-vehicle":    "editVehicle.html",
	"/permits":         "viewPermits.html",
	"/add-permit":      "addPermit.html",
	"/update-parking":  "updateParking.html",
	"/citations":       "viewCitations.html",
	"/add-citation":    "addCitation.html",
	"/edit-citation":   "editCitation.html",
	"/admin-dashboard": "adminDashboard.html",
}

func StaticRoutes(r *gin.Engine, frontendDir string) {
	r.Static("/static", filepath.Join(frontendDir, "static"))

	for route, file := range pageFiles {
		page := filepath.Join(frontendDir, file)
		r.GET(route, func(c *gin.Context) {
			c.File(page)
		})
	}
}
