package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campus_parking/internal/services"
)

type PermitController struct {
	svc services.PermitService
}

func NewPermitController(svc services.PermitService) *PermitController {
	return &PermitController{svc: svc}
}

// Create purchases a permit; the purchase date is now and the
// expiration lands exactly one calendar year later.
func (ctr *PermitController) Create(c *gin.Context) {
	var input struct {
		UID     string `json:"uid" binding:"required"`
		GradeID uint   `json:"grade_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid permit input: " + err.Error()})
		return
	}

	if !canActFor(c, input.UID) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot purchase permits for another user"})
		return
	}

	permit, err := ctr.svc.Create(c.Request.Context(), input.UID, input.GradeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Permit purchased successfully", "permit": permit})
}

func (ctr *PermitController) ListByUID(c *gin.Context) {
	uid := c.Param("uid")
	if !canActFor(c, uid) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot view another user's permits"})
		return
	}

	permits, err := ctr.svc.ListByUID(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, permits)
}

// ListGrades serves the static permit grade lookup table.
func (ctr *PermitController) ListGrades(c *gin.Context) {
	grades, err := ctr.svc.ListGrades(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, grades)
}
