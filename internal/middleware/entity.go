package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lucyth/activity-log-api/internal/constants"
	apierrors "github.com/lucyth/activity-log-api/internal/errors"
	"github.com/lucyth/activity-log-api/internal/models"
	"github.com/lucyth/activity-log-api/internal/services"
)

// RequireUser loads the user named by the :user_id path parameter and
// aborts with 404 when it does not exist. A non-integer id is treated
// the same as an absent row.
func RequireUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
		if err != nil {
			apierrors.NotFoundDetail(c, "User not found")
			c.Abort()
			return
		}

		user, err := users.Get(userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				apierrors.NotFoundDetail(c, "User not found")
			} else {
				apierrors.InternalError(c, "Failed to fetch user")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, *user)
		c.Next()
	}
}

// RequireActivity loads the activity named by the :id path parameter and
// aborts with 404 when it does not exist.
func RequireActivity(activities *services.ActivityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		activityID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.NotFoundDetail(c, "Activity not found")
			c.Abort()
			return
		}

		activity, err := activities.Get(activityID)
		if err != nil {
			if errors.Is(err, services.ErrActivityNotFound) {
				apierrors.NotFoundDetail(c, "Activity not found")
			} else {
				apierrors.InternalError(c, "Failed to fetch activity")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActivity, *activity)
		c.Next()
	}
}

// GetUser returns the user loaded by RequireUser.
func GetUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// GetActivity returns the activity loaded by RequireActivity.
func GetActivity(c *gin.Context) (models.Activity, bool) {
	value, exists := c.Get(constants.ContextKeyActivity)
	if !exists {
		return models.Activity{}, false
	}
	activity, ok := value.(models.Activity)
	return activity, ok
}
