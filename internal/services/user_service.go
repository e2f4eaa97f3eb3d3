package services

import (
	"errors"

	"github.com/lucyth/activity-log-api/internal/dto"
	"github.com/lucyth/activity-log-api/internal/models"
	"github.com/lucyth/activity-log-api/internal/repository"
	"github.com/lucyth/activity-log-api/internal/utils"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrActivityNotFound = errors.New("activity not found")
	// ErrUserReference mirrors the repository sentinel so handlers only
	// depend on the service layer.
	ErrUserReference = errors.New("user_id does not reference an existing user")
)

// UserService handles user business logic
type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Create inserts a new user and returns it with the generated user_id.
func (s *UserService) Create(req dto.UserCreate) (*models.User, error) {
	user := req.Model()
	if err := s.repo.Create(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns users in insertion order.
func (s *UserService) List(params utils.PaginationParams) ([]models.User, error) {
	return s.repo.List(params)
}

// Get returns a user by id, ErrUserNotFound if absent.
func (s *UserService) Get(id uint64) (*models.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update merges the supplied fields onto the user and persists it.
func (s *UserService) Update(user *models.User, req dto.UserUpdate) (*models.User, error) {
	req.ApplyTo(user)
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user by id.
func (s *UserService) Delete(id uint64) error {
	return s.repo.Delete(id)
}
