// internal/models/vehicle.go
package models

import (
	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	LicensePlate string `json:"license_plate" gorm:"uniqueIndex;not null"`
	VehicleModel string `json:"model" gorm:"column:model"`
	Color        string `json:"color"`
	UserID       uint   `json:"user_id" gorm:"index"`

	Citations []Citation `gorm:"foreignKey:VehicleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"citations,omitempty"`
}
