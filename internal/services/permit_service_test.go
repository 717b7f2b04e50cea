package services

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestExpirationFor_OneCalendarYear(t *testing.T) {
	purchase := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	if got := expirationFor(purchase); !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCreatePermit(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "jdoe", "jdoe@campus.edu", "user")
	grade := seedGrade(t, db, "Standard", 125.00)

	permit, err := NewPermitService(db).Create(context.Background(), "jdoe", grade.ID)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if !permit.ExpirationDate.Equal(permit.PurchaseDate.AddDate(1, 0, 0)) {
		t.Errorf("expiration %v is not one year after purchase %v", permit.ExpirationDate, permit.PurchaseDate)
	}
	if permit.VehicleID != nil {
		t.Errorf("permit should not be bound to a vehicle, got %v", *permit.VehicleID)
	}
	if permit.GradeID != grade.ID {
		t.Errorf("expected grade %d, got %d", grade.ID, permit.GradeID)
	}
}

func TestCreatePermit_UnknownUser(t *testing.T) {
	db := setupTestDB(t)
	grade := seedGrade(t, db, "Standard", 125.00)

	_, err := NewPermitService(db).Create(context.Background(), "ghost", grade.ID)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got: %v", err)
	}
}

func TestCreatePermit_UnknownGrade(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "jdoe", "jdoe@campus.edu", "user")

	_, err := NewPermitService(db).Create(context.Background(), "jdoe", 42)
	if !errors.Is(err, ErrGradeNotFound) {
		t.Fatalf("expected ErrGradeNotFound, got: %v", err)
	}
}

func TestListPermitsByUID_JoinsGrade(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "jdoe", "jdoe@campus.edu", "user")
	seedUser(t, db, "asmith", "asmith@campus.edu", "user")
	grade := seedGrade(t, db, "Premium", 400.00)
	svc := NewPermitService(db)

	if _, err := svc.Create(context.Background(), "jdoe", grade.ID); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), "asmith", grade.ID); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	rows, err := svc.ListByUID(context.Background(), "jdoe")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 permit, got %d", len(rows))
	}
	if rows[0].GradeName != "Premium" || rows[0].GradePrice != 400.00 {
		t.Errorf("grade fields missing from row: %+v", rows[0])
	}
}

func TestListGrades(t *testing.T) {
	db := setupTestDB(t)
	seedGrade(t, db, "Standard", 125.00)
	seedGrade(t, db, "Premium", 400.00)

	grades, err := NewPermitService(db).ListGrades(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(grades) != 2 {
		t.Fatalf("expected 2 grades, got %d", len(grades))
	}
}
