package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"campus_parking/internal/services"
)

// citationDateLayout is the wire format for citation dates.
const citationDateLayout = "2006-01-02"

type CitationController struct {
	svc services.CitationService
}

func NewCitationController(svc services.CitationService) *CitationController {
	return &CitationController{svc: svc}
}

// Create issues a citation against the vehicle carrying the given
// license plate. Admin only; nothing is inserted for unknown plates.
func (ctr *CitationController) Create(c *gin.Context) {
	var input struct {
		LicensePlate string  `json:"license_plate" binding:"required"`
		CitationDate string  `json:"citation_date" binding:"required"`
		Reason       string  `json:"reason" binding:"required"`
		Amount       float64 `json:"amount" binding:"required"`
		Status       string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid citation input: " + err.Error()})
		return
	}

	date, err := time.Parse(citationDateLayout, input.CitationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "citation_date must be formatted YYYY-MM-DD"})
		return
	}

	citation, err := ctr.svc.Create(c.Request.Context(), services.CitationInput{
		LicensePlate: input.LicensePlate,
		CitationDate: date,
		Reason:       input.Reason,
		Amount:       input.Amount,
		Status:       input.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Citation created successfully",
		"citation_number": citation.CitationNumber,
		"citation":        citation,
	})
}

func (ctr *CitationController) ListByUID(c *gin.Context) {
	uid := c.Param("uid")
	if !canActFor(c, uid) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot view another user's citations"})
		return
	}

	citations, err := ctr.svc.ListByUID(c.Request.Context(), uid)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, citations)
}

// ListAll serves the admin dashboard: every citation, newest first.
func (ctr *CitationController) ListAll(c *gin.Context) {
	citations, err := ctr.svc.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, citations)
}

func (ctr *CitationController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input struct {
		CitationDate string  `json:"citation_date" binding:"required"`
		Reason       string  `json:"reason" binding:"required"`
		Amount       float64 `json:"amount" binding:"required"`
		Status       string  `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid citation input: " + err.Error()})
		return
	}

	date, err := time.Parse(citationDateLayout, input.CitationDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "citation_date must be formatted YYYY-MM-DD"})
		return
	}

	citation, err := ctr.svc.Update(c.Request.Context(), id, services.CitationUpdate{
		CitationDate: date,
		Reason:       input.Reason,
		Amount:       input.Amount,
		Status:       input.Status,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Citation updated successfully", "citation": citation})
}

func (ctr *CitationController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctr.svc.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Citation deleted successfully"})
}

// Pay marks a citation as paid. The cited vehicle's owner (or an admin)
// is the only caller allowed through.
func (ctr *CitationController) Pay(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	ownerID, err := ctr.svc.OwnerID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !canTouchOwner(c, ownerID) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot pay another user's citation"})
		return
	}

	citation, err := ctr.svc.Pay(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Citation paid successfully", "citation": citation})
}
