package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
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

type ActivityHandler struct {
	service *services.ActivityService
}

func NewActivityHandler(service *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

func userReferenceError(c *gin.Context) {
	apierrors.ValidationFailed(c, []validation.FieldError{
		{Field: "user_id", Message: "user_id does not reference an existing user"},
	})
}

// CreateActivity creates a new activity and returns the full record.
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	var req dto.ActivityCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	if fieldErrs := validation.ActivityCreate(req); len(fieldErrs) > 0 {
		apierrors.ValidationFailed(c, fieldErrs)
		return
	}

	activity, err := h.service.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrUserReference) {
			userReferenceError(c)
			return
		}
		apierrors.InternalError(c, "Failed to create activity")
		return
	}

	c.JSON(http.StatusOK, activity)
}

// ListActivities returns a paginated list of full activity records.
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	activities, err := h.service.List(params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch activities")
		return
	}

	c.JSON(http.StatusOK, activities)
}

// GetActivity returns the activity loaded by RequireActivity.
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	activity, ok := middleware.GetActivity(c)
	if !ok {
		apierrors.InternalError(c, "Activity not found in context")
		return
	}

	c.JSON(http.StatusOK, activity)
}

// UpdateActivity applies a partial update to the activity loaded by
// RequireActivity. Only fields present in the payload change; an
// explicit "elevation_m": null clears the stored elevation.
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	activity, ok := middleware.GetActivity(c)
	if !ok {
		apierrors.InternalError(c, "Activity not found in context")
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	var req dto.ActivityUpdate
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	// Omitted and explicitly-null elevation_m both decode to nil above;
	// only the raw payload can tell them apart.
	var present map[string]json.RawMessage
	if err := json.Unmarshal(raw, &present); err == nil {
		if value, sent := present["elevation_m"]; sent && string(value) == "null" {
			req.ClearElevationM = true
		}
	}

	if fieldErrs := validation.ActivityUpdate(req); len(fieldErrs) > 0 {
		apierrors.ValidationFailed(c, fieldErrs)
		return
	}

	updated, err := h.service.Update(&activity, req)
	if err != nil {
		if errors.Is(err, services.ErrUserReference) {
			userReferenceError(c)
			return
		}
		apierrors.InternalError(c, "Failed to update activity")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteActivity removes the activity loaded by RequireActivity.
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	activity, ok := middleware.GetActivity(c)
	if !ok {
		apierrors.InternalError(c, "Activity not found in context")
		return
	}

	if err := h.service.Delete(activity.ID); err != nil {
		apierrors.InternalError(c, "Failed to delete activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Activity id %d deleted", activity.ID),
	})
}
