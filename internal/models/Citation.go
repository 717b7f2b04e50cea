// internal/models/citation.go
package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CitationUnpaid = "Unpaid"
	CitationPaid   = "Paid"
)

type Citation struct {
	gorm.Model
	CitationNumber string    `json:"citation_number" gorm:"uniqueIndex;not null"`
	CitationDate   time.Time `json:"citation_date"`
	Reason         string    `json:"reason"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status" gorm:"default:Unpaid"` // "Unpaid" or "Paid"
	VehicleID      uint      `json:"vehicle_id" gorm:"index"`
}
