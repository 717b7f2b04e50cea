package services

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Sentinel errors for everything a handler needs to distinguish.
// The strings double as the client-facing messages.
var (
	ErrMissingFields      = errors.New("All required fields (UID, Email, Password, First Name, Last Name, Role) must be provided")
	ErrInvalidEmail       = errors.New("Invalid email format")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters")
	ErrInvalidRole        = errors.New("Invalid role")
	ErrInvalidCredentials = errors.New("Invalid UID or password")
	ErrUserNotFound       = errors.New("User not found")
	ErrVehicleNotFound    = errors.New("Vehicle not found")
	ErrPlateNotFound      = errors.New("Vehicle not found with this license plate")
	ErrGradeNotFound      = errors.New("Permit grade not found")
	ErrCitationNotFound   = errors.New("Citation not found")
	ErrVehicleLimit       = errors.New("Maximum of 2 vehicles allowed")
	ErrDuplicateUID       = errors.New("User ID already exists")
	ErrDuplicateEmail     = errors.New("Email already exists")
	ErrDuplicatePlate     = errors.New("License plate already exists")
	ErrDuplicateCitation  = errors.New("Citation number already exists")
)

// isDuplicate reports whether err is a unique-constraint violation and,
// if so, returns text naming the violated constraint so callers can tell
// which column collided. Postgres surfaces a pq.Error with code 23505;
// the sqlite driver used in tests only gives a message to inspect.
func isDuplicate(err error) (string, bool) {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.Constraint + " " + pgErr.Detail, true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value") {
		return err.Error(), true
	}
	return "", false
}
