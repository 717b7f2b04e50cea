package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"campus_parking/internal/models"
)

// PermitWithGrade is the listing row shown to users: permit dates plus
// the display name and price of the purchased grade.
type PermitWithGrade struct {
	PurchaseDate   time.Time `json:"purchase_date"`
	ExpirationDate time.Time `json:"expiration_date"`
	GradeName      string    `json:"grade_name"`
	GradePrice     float64   `json:"grade_price"`
}

type PermitService interface {
	// Create purchases a permit of the given grade for the user
	// identified by uid. The permit is not bound to a vehicle.
	Create(ctx context.Context, uid string, gradeID uint) (models.Permit, error)
	ListByUID(ctx context.Context, uid string) ([]PermitWithGrade, error)
	ListGrades(ctx context.Context) ([]models.PermitGrade, error)
}

type permitService struct {
	db *gorm.DB
}

func NewPermitService(db *gorm.DB) PermitService {
	return &permitService{db: db}
}

func (s *permitService) Create(ctx context.Context, uid string, gradeID uint) (models.Permit, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("uid = ?", uid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Permit{}, ErrUserNotFound
		}
		return models.Permit{}, err
	}

	var grade models.PermitGrade
	if err := s.db.WithContext(ctx).First(&grade, gradeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Permit{}, ErrGradeNotFound
		}
		return models.Permit{}, err
	}

	purchase := dateOnly(time.Now())
	permit := models.Permit{
		PurchaseDate:   purchase,
		ExpirationDate: expirationFor(purchase),
		UserID:         user.ID,
		VehicleID:      nil,
		GradeID:        grade.ID,
	}
	if err := s.db.WithContext(ctx).Create(&permit).Error; err != nil {
		return models.Permit{}, err
	}
	return permit, nil
}

func (s *permitService) ListByUID(ctx context.Context, uid string) ([]PermitWithGrade, error) {
	var rows []PermitWithGrade
	err := s.db.WithContext(ctx).Model(&models.Permit{}).
		Select("permits.purchase_date, permits.expiration_date, permit_grades.grade_name, permit_grades.grade_price").
		Joins("JOIN users ON users.id = permits.user_id").
		Joins("JOIN permit_grades ON permit_grades.id = permits.grade_id").
		Where("users.uid = ?", uid).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *permitService) ListGrades(ctx context.Context) ([]models.PermitGrade, error) {
	var grades []models.PermitGrade
	if err := s.db.WithContext(ctx).Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

// expirationFor returns the expiration date for a permit purchased on
// the given day: the same calendar date one year later.
func expirationFor(purchase time.Time) time.Time {
	return purchase.AddDate(1, 0, 0)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
