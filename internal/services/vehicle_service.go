package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"campus_parking/internal/models"
)

// maxVehiclesPerUser caps how many vehicles a single account may register.
const maxVehiclesPerUser = 2

// VehicleInput carries the mutable fields of a vehicle.
type VehicleInput struct {
	LicensePlate string
	Model        string
	Color        string
}

// VehicleWithOwner is the admin listing row: vehicle plus owner name.
type VehicleWithOwner struct {
	VehicleID    uint   `json:"vehicle_id"`
	LicensePlate string `json:"license_plate"`
	Model        string `json:"model"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

type VehicleService interface {
	// Create registers a vehicle for the user identified by uid. The
	// uid lookup, the per-user count check and the insert run in one
	// transaction so concurrent requests cannot race past the cap.
	Create(ctx context.Context, uid string, input VehicleInput) (models.Vehicle, error)
	ListByUID(ctx context.Context, uid string) ([]models.Vehicle, error)
	Get(ctx context.Context, id uint) (models.Vehicle, error)
	ListAll(ctx context.Context) ([]VehicleWithOwner, error)
	Update(ctx context.Context, id uint, input VehicleInput) (models.Vehicle, error)
	Delete(ctx context.Context, id uint) error
}

type vehicleService struct {
	db *gorm.DB
}

func NewVehicleService(db *gorm.DB) VehicleService {
	return &vehicleService{db: db}
}

func (s *vehicleService) Create(ctx context.Context, uid string, input VehicleInput) (models.Vehicle, error) {
	var vehicle models.Vehicle

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("uid = ?", uid).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Vehicle{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
			return err
		}
		if count >= maxVehiclesPerUser {
			return ErrVehicleLimit
		}

		vehicle = models.Vehicle{
			LicensePlate: input.LicensePlate,
			VehicleModel: input.Model,
			Color:        input.Color,
			UserID:       user.ID,
		}
		if err := tx.Create(&vehicle).Error; err != nil {
			if _, ok := isDuplicate(err); ok {
				return ErrDuplicatePlate
			}
			return err
		}
		return nil
	})
	if err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

func (s *vehicleService) ListByUID(ctx context.Context, uid string) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := s.db.WithContext(ctx).
		Joins("JOIN users ON users.id = vehicles.user_id").
		Where("users.uid = ?", uid).
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (s *vehicleService) Get(ctx context.Context, id uint) (models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Vehicle{}, ErrVehicleNotFound
		}
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

func (s *vehicleService) ListAll(ctx context.Context) ([]VehicleWithOwner, error) {
	var rows []VehicleWithOwner
	err := s.db.WithContext(ctx).Model(&models.Vehicle{}).
		Select("vehicles.id AS vehicle_id, vehicles.license_plate, vehicles.model, users.first_name, users.last_name").
		Joins("JOIN users ON users.id = vehicles.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *vehicleService) Update(ctx context.Context, id uint, input VehicleInput) (models.Vehicle, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return models.Vehicle{}, err
	}

	vehicle.LicensePlate = input.LicensePlate
	vehicle.VehicleModel = input.Model
	vehicle.Color = input.Color
	if err := s.db.WithContext(ctx).Save(&vehicle).Error; err != nil {
		if _, ok := isDuplicate(err); ok {
			return models.Vehicle{}, ErrDuplicatePlate
		}
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

func (s *vehicleService) Delete(ctx context.Context, id uint) error {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	// Hard delete: a soft-deleted row would keep holding the unique
	// plate index and the plate could never be registered again.
	return s.db.WithContext(ctx).Unscoped().Delete(&vehicle).Error
}
