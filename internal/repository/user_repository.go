package repository

import (
	"errors"

	"github.com/lucyth/activity-log-api/internal/database"
	"github.com/lucyth/activity-log-api/internal/models"
	"github.com/lucyth/activity-log-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a user and fills in the generated user_id
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by id
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List retrieves users in insertion order with pagination
func (r *GormUserRepository) List(params utils.PaginationParams) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Order("user_id").
		Scopes(database.Paginate(params)).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update persists the full current state of a user row
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete removes a user row by id
func (r *GormUserRepository) Delete(id uint64) error {
	return r.db.Delete(&models.User{}, id).Error
}
