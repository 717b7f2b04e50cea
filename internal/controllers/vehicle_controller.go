package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"campus_parking/internal/services"
)

type VehicleController struct {
	svc services.VehicleService
}

func NewVehicleController(svc services.VehicleService) *VehicleController {
	return &VehicleController{svc: svc}
}

// Create registers a vehicle for a user, capped at two per account.
func (ctr *VehicleController) Create(c *gin.Context) {
	var input struct {
		UID          string `json:"uid" binding:"required"`
		LicensePlate string `json:"license_plate" binding:"required"`
		Model        string `json:"model"`
		Color        string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle input: " + err.Error()})
		return
	}

	if !canActFor(c, input.UID) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot add vehicles for another user"})
		return
	}

	vehicle, err := ctr.svc.Create(c.Request.Context(), input.UID, services.VehicleInput{
		LicensePlate: input.LicensePlate,
		Model:        input.Model,
		Color:        input.Color,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle added successfully", "vehicle": vehicle})
}

func (ctr *VehicleController) ListByUID(c *gin.Context) {
	uid := c.Param("uid")
	if !canActFor(c, uid) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot view another user's vehicles"})
		return
	}

	vehicles, err := ctr.svc.ListByUID(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (ctr *VehicleController) Get(c *gin.Context) {
	id, ok := parseID(c, "vehicle_id")
	if !ok {
		return
	}

	vehicle, err := ctr.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !canTouchOwner(c, vehicle.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot view another user's vehicle"})
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// This method is for administrative use: every vehicle with its owner.
func (ctr *VehicleController) ListAll(c *gin.Context) {
	rows, err := ctr.svc.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ctr *VehicleController) Update(c *gin.Context) {
	id, ok := parseID(c, "vehicle_id")
	if !ok {
		return
	}

	var input struct {
		LicensePlate string `json:"license_plate" binding:"required"`
		Model        string `json:"model"`
		Color        string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid vehicle input: " + err.Error()})
		return
	}

	existing, err := ctr.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !canTouchOwner(c, existing.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot edit another user's vehicle"})
		return
	}

	vehicle, err := ctr.svc.Update(c.Request.Context(), id, services.VehicleInput{
		LicensePlate: input.LicensePlate,
		Model:        input.Model,
		Color:        input.Color,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle updated successfully", "vehicle": vehicle})
}

func (ctr *VehicleController) Delete(c *gin.Context) {
	id, ok := parseID(c, "vehicle_id")
	if !ok {
		return
	}

	existing, err := ctr.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !canTouchOwner(c, existing.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot delete another user's vehicle"})
		return
	}

	if err := ctr.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Vehicle deleted successfully"})
}

// parseID reads a numeric path parameter, answering 400 itself when the
// value is not a positive integer.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
