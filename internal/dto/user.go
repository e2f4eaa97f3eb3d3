package dto

import (
	"github.com/lucyth/activity-log-api/internal/models"
)

// UserCreate is the request body for creating a user. The user_id is
// assigned by the server on insert.
type UserCreate struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UserUpdate is the request body for partially updating a user. Nil
// fields were omitted from the payload and leave the stored value
// untouched.
type UserUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserPublic is the user shape returned by all read endpoints. Email is
// stored but never serialized back to callers.
type UserPublic struct {
	UserID uint64 `json:"user_id"`
	Name   string `json:"name"`
}

// Model builds a new User from the create request.
func (r UserCreate) Model() models.User {
	return models.User{
		Name:  r.Name,
		Email: r.Email,
	}
}

// ApplyTo merges the supplied fields onto an existing user.
func (r UserUpdate) ApplyTo(user *models.User) {
	if r.Name != nil {
		user.Name = *r.Name
	}
	if r.Email != nil {
		user.Email = *r.Email
	}
}

// ToUserPublic converts a User model to its public projection.
func ToUserPublic(user models.User) UserPublic {
	return UserPublic{
		UserID: user.UserID,
		Name:   user.Name,
	}
}

// ToUserPublicList converts a slice of User models to public projections.
func ToUserPublicList(users []models.User) []UserPublic {
	items := make([]UserPublic, len(users))
	for i, user := range users {
		items[i] = ToUserPublic(user)
	}
	return items
}
