// internal/models/permit_grade.go
package models

import (
	"gorm.io/gorm"
)

// PermitGrade is a priced tier of parking permit (e.g. Standard, Premium).
// Static lookup table, loaded by the seed script.
type PermitGrade struct {
	gorm.Model
	GradeName  string  `json:"grade_name" binding:"required"`
	GradePrice float64 `json:"grade_price"`
}
