package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"campus_parking/internal/services"
)

// respondServiceError converts a service error into the matching HTTP
// status and JSON body. Anything unrecognized is logged and reported as
// a generic 500 so internals never leak to the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrVehicleNotFound),
		errors.Is(err, services.ErrPlateNotFound),
		errors.Is(err, services.ErrGradeNotFound),
		errors.Is(err, services.ErrCitationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
	case errors.Is(err, services.ErrMissingFields),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrVehicleLimit),
		errors.Is(err, services.ErrDuplicateUID),
		errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicatePlate),
		errors.Is(err, services.ErrDuplicateCitation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
	}
}
