package main

import (
	"log"

	"github.com/lucyth/activity-log-api/internal/config"
	"github.com/lucyth/activity-log-api/internal/database"
	"github.com/lucyth/activity-log-api/internal/models"
)

// Seeds the database with a few sample users and activities.
func main() {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	users := []models.User{
		{Name: "lucy", Email: "lucy@gmail.com"},
		{Name: "bob", Email: "bob@gmail.com"},
		{Name: "sam", Email: "sam@gmail.com"},
	}
	for i := range users {
		if err := db.Create(&users[i]).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", users[i].Name, err)
		}
	}

	elevation := 120
	activities := []models.Activity{
		{
			UserID:          users[0].UserID,
			Date:            "2024/03/01",
			Time:            "07:45",
			Activity:        "run",
			ActivityType:    "easy",
			MovingTime:      "00:42:10",
			DistanceKM:      8.2,
			PerceivedEffort: 4,
		},
		{
			UserID:          users[0].UserID,
			Date:            "2024/03/03",
			Time:            "09:00",
			Activity:        "ride",
			ActivityType:    "endurance",
			MovingTime:      "02:15:00",
			DistanceKM:      62.5,
			PerceivedEffort: 6,
			ElevationM:      &elevation,
		},
		{
			UserID:          users[1].UserID,
			Date:            "2024/03/02",
			Time:            "18:30",
			Activity:        "run",
			ActivityType:    "intervals",
			MovingTime:      "00:55:30",
			DistanceKM:      10.0,
			PerceivedEffort: 8,
		},
	}
	for i := range activities {
		if err := db.Create(&activities[i]).Error; err != nil {
			log.Fatalf("Failed to seed activity: %v", err)
		}
	}

	log.Printf("Seeded %d users and %d activities", len(users), len(activities))
}
