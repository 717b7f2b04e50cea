package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"campus_parking/internal/models"
)

// CitationInput carries the fields an admin supplies when issuing a
// citation. Status may be empty, in which case it defaults to Unpaid.
type CitationInput struct {
	LicensePlate string
	CitationDate time.Time
	Reason       string
	Amount       float64
	Status       string
}

// CitationUpdate is the full-field update payload; there is no partial
// update support.
type CitationUpdate struct {
	CitationDate time.Time
	Reason       string
	Amount       float64
	Status       string
}

// CitationWithVehicle is the per-user listing row.
type CitationWithVehicle struct {
	CitationID     uint      `json:"citation_id"`
	CitationNumber string    `json:"citation_number"`
	CitationDate   time.Time `json:"citation_date"`
	Reason         string    `json:"reason"`
	Amount         float64   `json:"amount"`
	Status         string    `json:"status"`
	VehicleID      uint      `json:"vehicle_id"`
	LicensePlate   string    `json:"license_plate"`
	Model          string    `json:"model"`
}

// CitationWithOwner is the admin listing row, with the owner's name.
type CitationWithOwner struct {
	CitationWithVehicle
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type CitationService interface {
	// Create resolves the license plate to a vehicle and issues a
	// citation against it. Nothing is inserted when the plate is unknown.
	Create(ctx context.Context, input CitationInput) (models.Citation, error)
	Get(ctx context.Context, id uint) (models.Citation, error)
	// OwnerID returns the id of the user owning the cited vehicle.
	OwnerID(ctx context.Context, id uint) (uint, error)
	ListByUID(ctx context.Context, uid string) ([]CitationWithVehicle, error)
	ListAll(ctx context.Context) ([]CitationWithOwner, error)
	Update(ctx context.Context, id uint, input CitationUpdate) (models.Citation, error)
	Delete(ctx context.Context, id uint) error
	// Pay sets the status to Paid and touches nothing else.
	Pay(ctx context.Context, id uint) (models.Citation, error)
}

type citationService struct {
	db *gorm.DB
}

func NewCitationService(db *gorm.DB) CitationService {
	return &citationService{db: db}
}

func (s *citationService) Create(ctx context.Context, input CitationInput) (models.Citation, error) {
	var vehicle models.Vehicle
	if err := s.db.WithContext(ctx).Where("license_plate = ?", input.LicensePlate).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Citation{}, ErrPlateNotFound
		}
		return models.Citation{}, err
	}

	status := input.Status
	if status == "" {
		status = models.CitationUnpaid
	}

	citation := models.Citation{
		CitationDate: input.CitationDate,
		Reason:       input.Reason,
		Amount:       input.Amount,
		Status:       status,
		VehicleID:    vehicle.ID,
	}

	// Numbers are derived from the clock, so two citations issued in
	// the same millisecond collide. Wait out the millisecond and
	// regenerate instead of failing the request.
	for attempt := 0; attempt < 3; attempt++ {
		citation.ID = 0
		citation.CitationNumber = newCitationNumber()
		err := s.db.WithContext(ctx).Create(&citation).Error
		if err == nil {
			return citation, nil
		}
		if _, ok := isDuplicate(err); ok {
			time.Sleep(time.Millisecond)
			continue
		}
		return models.Citation{}, err
	}
	return models.Citation{}, ErrDuplicateCitation
}

func (s *citationService) Get(ctx context.Context, id uint) (models.Citation, error) {
	var citation models.Citation
	if err := s.db.WithContext(ctx).First(&citation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Citation{}, ErrCitationNotFound
		}
		return models.Citation{}, err
	}
	return citation, nil
}

func (s *citationService) OwnerID(ctx context.Context, id uint) (uint, error) {
	citation, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	var vehicle models.Vehicle
	if err := s.db.WithContext(ctx).First(&vehicle, citation.VehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrVehicleNotFound
		}
		return 0, err
	}
	return vehicle.UserID, nil
}

func (s *citationService) ListByUID(ctx context.Context, uid string) ([]CitationWithVehicle, error) {
	var rows []CitationWithVehicle
	err := s.db.WithContext(ctx).Model(&models.Citation{}).
		Select(`citations.id AS citation_id, citations.citation_number, citations.citation_date,
			citations.reason, citations.amount, citations.status, citations.vehicle_id,
			vehicles.license_plate, vehicles.model`).
		Joins("JOIN vehicles ON vehicles.id = citations.vehicle_id").
		Joins("JOIN users ON users.id = vehicles.user_id").
		Where("users.uid = ?", uid).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *citationService) ListAll(ctx context.Context) ([]CitationWithOwner, error) {
	var rows []CitationWithOwner
	err := s.db.WithContext(ctx).Model(&models.Citation{}).
		Select(`citations.id AS citation_id, citations.citation_number, citations.citation_date,
			citations.reason, citations.amount, citations.status, citations.vehicle_id,
			vehicles.license_plate, vehicles.model, users.first_name, users.last_name`).
		Joins("JOIN vehicles ON vehicles.id = citations.vehicle_id").
		Joins("JOIN users ON users.id = vehicles.user_id").
		Order("citations.citation_date DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *citationService) Update(ctx context.Context, id uint, input CitationUpdate) (models.Citation, error) {
	citation, err := s.Get(ctx, id)
	if err != nil {
		return models.Citation{}, err
	}

	citation.CitationDate = input.CitationDate
	citation.Reason = input.Reason
	citation.Amount = input.Amount
	citation.Status = input.Status
	if err := s.db.WithContext(ctx).Save(&citation).Error; err != nil {
		return models.Citation{}, err
	}
	return citation, nil
}

func (s *citationService) Delete(ctx context.Context, id uint) error {
	citation, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	// Hard delete, same as vehicles: the citation number must not stay
	// claimed by a soft-deleted row.
	return s.db.WithContext(ctx).Unscoped().Delete(&citation).Error
}

func (s *citationService) Pay(ctx context.Context, id uint) (models.Citation, error) {
	citation, err := s.Get(ctx, id)
	if err != nil {
		return models.Citation{}, err
	}
	if err := s.db.WithContext(ctx).Model(&citation).Update("status", models.CitationPaid).Error; err != nil {
		return models.Citation{}, err
	}
	return citation, nil
}

// newCitationNumber derives a citation number from the last 8 digits of
// the current epoch milliseconds, e.g. "CIT-56789012".
func newCitationNumber() string {
	ms := strconv.FormatInt(time.Now().UnixMilli(), 10)
	return "CIT-" + ms[len(ms)-8:]
}
