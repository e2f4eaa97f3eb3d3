package services

import (
	"errors"

	"github.com/lucyth/activity-log-api/internal/dto"
	"github.com/lucyth/activity-log-api/internal/models"
	"github.com/lucyth/activity-log-api/internal/repository"
	"github.com/lucyth/activity-log-api/internal/utils"
)

// ActivityService handles activity business logic
type ActivityService struct {
	repo repository.ActivityRepository
}

// NewActivityService creates a new ActivityService
func NewActivityService(repo repository.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

func translateActivityErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrActivityNotFound
	case errors.Is(err, repository.ErrUserReference):
		return ErrUserReference
	default:
		return err
	}
}

// Create inserts a new activity and returns it with the generated id.
func (s *ActivityService) Create(req dto.ActivityCreate) (*models.Activity, error) {
	activity := req.Model()
	if err := s.repo.Create(&activity); err != nil {
		return nil, translateActivityErr(err)
	}
	return &activity, nil
}

// List returns activities in insertion order.
func (s *ActivityService) List(params utils.PaginationParams) ([]models.Activity, error) {
	return s.repo.List(params)
}

// Get returns an activity by id, ErrActivityNotFound if absent.
func (s *ActivityService) Get(id uint64) (*models.Activity, error) {
	activity, err := s.repo.FindByID(id)
	if err != nil {
		return nil, translateActivityErr(err)
	}
	return activity, nil
}

// Update merges the supplied fields onto the activity and persists it.
func (s *ActivityService) Update(activity *models.Activity, req dto.ActivityUpdate) (*models.Activity, error) {
	req.ApplyTo(activity)
	if err := s.repo.Update(activity); err != nil {
		return nil, translateActivityErr(err)
	}
	return activity, nil
}

// Delete removes an activity by id.
func (s *ActivityService) Delete(id uint64) error {
	return s.repo.Delete(id)
}
