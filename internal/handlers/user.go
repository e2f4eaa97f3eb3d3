package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucyth/activity-log-api/internal/dto"
	apierrors "github.com/lucyth/activity-log-api/internal/errors"
	"github.com/lucyth/activity-log-api/internal/middleware"
	"github.com/lucyth/activity-log-api/internal/services"
	"github.com/lucyth/activity-log-api/internal/utils"
	"github.com/lucyth/activity-log-api/internal/validation"
)

type UserHandler struct {
	service *services.UserService
}

func NewUserHandler(service *services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUser creates a new user and returns its public view.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.UserCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	if fieldErrs := validation.UserCreate(req); len(fieldErrs) > 0 {
		apierrors.ValidationFailed(c, fieldErrs)
		return
	}

	user, err := h.service.Create(req)
	if err != nil {
		apierrors.InternalError(c, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserPublic(*user))
}

// ListUsers returns a paginated list of public user views.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, err := h.service.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch users")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserPublicList(users))
}

// GetUser returns the public view of the user loaded by RequireUser.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.InternalError(c, "User not found in context")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserPublic(user))
}

// UpdateUser applies a partial update to the user loaded by RequireUser.
// Only fields present in the payload change.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.InternalError(c, "User not found in context")
		return
	}

	var req dto.UserUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	if fieldErrs := validation.UserUpdate(req); len(fieldErrs) > 0 {
		apierrors.ValidationFailed(c, fieldErrs)
		return
	}

	updated, err := h.service.Update(&user, req)
	if err != nil {
		apierrors.InternalError(c, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserPublic(*updated))
}

// DeleteUser removes the user loaded by RequireUser.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		apierrors.InternalError(c, "User not found in context")
		return
	}

	if err := h.service.Delete(user.UserID); err != nil {
		apierrors.InternalError(c, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User_id %d deleted", user.UserID),
	})
}
