package services

import (
	"testing"

	"github.com/lucyth/activity-log-api/internal/models"
	"github.com/lucyth/activity-log-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Activity{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestUserService_Get(t *testing.T) {
	db := setupServiceTestDB(t)
	service := NewUserService(repository.NewUserRepository(db))

	stored := models.User{Name: "lucy", Email: "lucy@example.com"}
	require.NoError(t, db.Create(&stored).Error)

	user, err := service.Get(stored.UserID)
	require.NoError(t, err)
	require.Equal(t, "lucy", user.Name)

	user, err = service.Get(99)
	require.Nil(t, user)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestActivityService_Get(t *testing.T) {
	db := setupServiceTestDB(t)
	service := NewActivityService(repository.NewActivityRepository(db))

	user := models.User{Name: "lucy", Email: "lucy@example.com"}
	require.NoError(t, db.Create(&user).Error)
	stored := models.Activity{
		UserID:          user.UserID,
		Date:            "2024/01/01",
		Time:            "08:30",
		Activity:        "run",
		ActivityType:    "easy",
		MovingTime:      "01:20:00",
		DistanceKM:      12.5,
		PerceivedEffort: 7,
	}
	require.NoError(t, db.Create(&stored).Error)

	activity, err := service.Get(stored.ID)
	require.NoError(t, err)
	require.Equal(t, "run", activity.Activity)

	activity, err = service.Get(99)
	require.Nil(t, activity)
	require.ErrorIs(t, err, ErrActivityNotFound)
}
