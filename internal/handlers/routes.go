package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/lucyth/activity-log-api/internal/middleware"
)

// RegisterRoutes wires the user and activity CRUD routes onto the router.
func RegisterRoutes(r *gin.Engine, userHandler *UserHandler, activityHandler *ActivityHandler) {
	requireUser := middleware.RequireUser(userHandler.service)
	requireActivity := middleware.RequireActivity(activityHandler.service)

	users := r.Group("/users")
	{
		users.POST("/", userHandler.CreateUser)
		users.GET("/", userHandler.ListUsers)
		users.GET("/:user_id", requireUser, userHandler.GetUser)
		users.PATCH("/:user_id", requireUser, userHandler.UpdateUser)
		users.DELETE("/:user_id", requireUser, userHandler.DeleteUser)
	}

	activities := r.Group("/activities")
	{
		activities.POST("/", activityHandler.CreateActivity)
		activities.GET("/", activityHandler.ListActivities)
		activities.GET("/:id", requireActivity, activityHandler.GetActivity)
		activities.PATCH("/:id", requireActivity, activityHandler.UpdateActivity)
		activities.DELETE("/:id", requireActivity, activityHandler.DeleteActivity)
	}
}
