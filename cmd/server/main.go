package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/lucyth/activity-log-api/internal/config"
	"github.com/lucyth/activity-log-api/internal/database"
	"github.com/lucyth/activity-log-api/internal/handlers"
	"github.com/lucyth/activity-log-api/internal/repository"
	"github.com/lucyth/activity-log-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Reject payloads carrying fields the DTOs do not declare
	gin.EnableJsonDecoderDisallowUnknownFields()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Initialize handlers
	db := database.GetDB()
	userHandler := handlers.NewUserHandler(services.NewUserService(repository.NewUserRepository(db)))
	activityHandler := handlers.NewActivityHandler(services.NewActivityService(repository.NewActivityRepository(db)))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Activity Log API is running",
		})
	})

	// CRUD routes
	handlers.RegisterRoutes(r, userHandler, activityHandler)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
