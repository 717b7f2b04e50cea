package models

import (
	"time"

	"gorm.io/gorm"
)

// Permit records a purchased parking permit for a user.
// ExpirationDate is always PurchaseDate plus one calendar year.
// VehicleID stays NULL: permits are not bound to a specific vehicle.
type Permit struct {
	gorm.Model
	PurchaseDate   time.Time `json:"purchase_date"`
	ExpirationDate time.Time `json:"expiration_date"`
	UserID         uint      `json:"user_id" gorm:"index"`
	VehicleID      *uint     `json:"vehicle_id"`
	GradeID        uint      `json:"grade_id"`

	Grade *PermitGrade `gorm:"foreignKey:GradeID" json:"grade,omitempty"`
}
