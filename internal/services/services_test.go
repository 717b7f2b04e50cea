package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campus_parking/internal/database"
	"campus_parking/internal/models"
)

// setupTestDB opens an in-memory sqlite handle and migrates the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("could not open test DB: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return db
}

// seedUser creates an account through the real signup path so the
// stored hash is valid for login tests.
func seedUser(t *testing.T, db *gorm.DB, uid, email, role string) models.User {
	t.Helper()
	user, err := NewAuthService(db).Signup(context.Background(), SignupInput{
		UID:       uid,
		Email:     email,
		Password:  "password123",
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
	})
	if err != nil {
		t.Fatalf("could not seed user %s: %v", uid, err)
	}
	return user
}

func seedGrade(t *testing.T, db *gorm.DB, name string, price float64) models.PermitGrade {
	t.Helper()
	grade := models.PermitGrade{GradeName: name, GradePrice: price}
	if err := db.Create(&grade).Error; err != nil {
		t.Fatalf("could not seed grade %s: %v", name, err)
	}
	return grade
}

func seedVehicle(t *testing.T, db *gorm.DB, uid, plate string) models.Vehicle {
	t.Helper()
	vehicle, err := NewVehicleService(db).Create(context.Background(), uid, VehicleInput{
		LicensePlate: plate,
		Model:        "Civic",
		Color:        "Blue",
	})
	if err != nil {
		t.Fatalf("could not seed vehicle %s: %v", plate, err)
	}
	return vehicle
}
