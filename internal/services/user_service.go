package services

import (
	"errors"
	"fmt"
	"strings"

	"drive_service/internal/auth"
	"drive_service/internal/models"
	"drive_service/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles registration, login and profile updates.
type UserService struct {
	repo repositories.UserRepository
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		repo: repositories.NewUserRepository(db),
	}
}

// Register creates a user with a bcrypt-hashed password.
func (s *UserService) Register(firstName, lastName, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalid)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Name:     strings.TrimSpace(firstName + " " + lastName),
		Password: hash,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the password and issues a bearer token. With an empty
// password it only checks that the email is registered.
func (s *UserService) Login(email, password string) (*models.User, string, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("%w: user", ErrNotFound)
		}
		return nil, "", err
	}

	if password == "" {
		return user, "", nil
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return nil, "", fmt.Errorf("%w: incorrect password", ErrInvalid)
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Get returns a user by id.
func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		return nil, err
	}
	return user, nil
}

// UpdateName changes the display name, the only mutable user attribute.
func (s *UserService) UpdateName(id uuid.UUID, name string) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
		if err := s.repo.Save(user); err != nil {
			return nil, err
		}
	}

	return user, nil
}
