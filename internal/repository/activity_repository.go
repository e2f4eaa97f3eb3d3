package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucyth/activity-log-api/internal/database"
	"github.com/lucyth/activity-log-api/internal/models"
	"github.com/lucyth/activity-log-api/internal/utils"
	"gorm.io/gorm"
)

// GormActivityRepository is a GORM implementation of ActivityRepository
type GormActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &GormActivityRepository{db: db}
}

// isForeignKeyViolation matches the FK error text of the postgres, mysql
// and sqlite drivers. GORM exposes no portable typed error for this.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "foreign key")
}

// Create inserts an activity and fills in the generated id
func (r *GormActivityRepository) Create(activity *models.Activity) error {
	if err := r.db.Create(activity).Error; err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", ErrUserReference, err)
		}
		return err
	}
	return nil
}

// FindByID finds an activity by id
func (r *GormActivityRepository) FindByID(id uint64) (*models.Activity, error) {
	var activity models.Activity
	if err := r.db.First(&activity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &activity, nil
}

// List retrieves activities in insertion order with pagination
func (r *GormActivityRepository) List(params utils.PaginationParams) ([]models.Activity, error) {
	var activities []models.Activity
	err := r.db.
		Order("id").
		Scopes(database.Paginate(params)).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// Update persists the full current state of an activity row
func (r *GormActivityRepository) Update(activity *models.Activity) error {
	if err := r.db.Save(activity).Error; err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %v", ErrUserReference, err)
		}
		return err
	}
	return nil
}

// Delete removes an activity row by id
func (r *GormActivityRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Activity{}, id).Error
}
