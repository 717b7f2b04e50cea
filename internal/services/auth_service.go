package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"campus_parking/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SignupInput carries the fields collected by the signup form.
type SignupInput struct {
	UID         string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Role        string
}

// AuthService handles account creation and credential checks.
type AuthService interface {
	// Signup validates the input, hashes the password and stores the
	// new account. Duplicate uid/email come back as field-specific errors.
	Signup(ctx context.Context, input SignupInput) (models.User, error)
	// Login verifies uid + password. Unknown uid and wrong password are
	// indistinguishable: both return ErrInvalidCredentials.
	Login(ctx context.Context, uid, password string) (models.User, error)
}

type authService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) AuthService {
	return &authService{db: db}
}

func (s *authService) Signup(ctx context.Context, input SignupInput) (models.User, error) {
	if !emailPattern.MatchString(input.Email) {
		return models.User{}, ErrInvalidEmail
	}
	if len(input.Password) < 6 {
		return models.User{}, ErrPasswordTooShort
	}

	role, err := normalizeRole(input.Role)
	if err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		UID:          input.UID,
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		Role:         role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if text, ok := isDuplicate(err); ok {
			if strings.Contains(text, "email") {
				return models.User{}, ErrDuplicateEmail
			}
			return models.User{}, ErrDuplicateUID
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, uid, password string) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("uid = ?", uid).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func normalizeRole(roleInput string) (string, error) {
	role := strings.ToLower(strings.TrimSpace(roleInput))
	if role == "" {
		role = "user"
	}
	switch role {
	case "user", "admin":
		return role, nil
	default:
		return "", ErrInvalidRole
	}
}
