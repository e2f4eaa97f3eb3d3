package repository

import (
	"errors"

	"github.com/lucyth/activity-log-api/internal/models"
	"github.com/lucyth/activity-log-api/internal/utils"
)

var (
	// ErrNotFound is returned when a lookup by id yields no row.
	ErrNotFound = errors.New("repository: record not found")
	// ErrUserReference is returned when an activity write references a
	// user_id with no matching row in user_table.
	ErrUserReference = errors.New("repository: user_id does not reference an existing user")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a user and fills in the generated user_id
	Create(user *models.User) error

	// FindByID finds a user by id, ErrNotFound if absent
	FindByID(id uint64) (*models.User, error)

	// List retrieves users in insertion order with pagination
	List(params utils.PaginationParams) ([]models.User, error)

	// Update persists the full current state of a user row
	Update(user *models.User) error

	// Delete removes a user row by id
	Delete(id uint64) error
}

// ActivityRepository defines the interface for activity data access
type ActivityRepository interface {
	// Create inserts an activity and fills in the generated id
	Create(activity *models.Activity) error

	// FindByID finds an activity by id, ErrNotFound if absent
	FindByID(id uint64) (*models.Activity, error)

	// List retrieves activities in insertion order with pagination
	List(params utils.PaginationParams) ([]models.Activity, error)

	// Update persists the full current state of an activity row
	Update(activity *models.Activity) error

	// Delete removes an activity row by id
	Delete(id uint64) error
}
