package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lucyth/activity-log-api/internal/database"
	"github.com/lucyth/activity-log-api/internal/models"
	"github.com/lucyth/activity-log-api/internal/repository"
	"github.com/lucyth/activity-log-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupUserTestEnv(t *testing.T) userTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Activity{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userHandler := NewUserHandler(services.NewUserService(repository.NewUserRepository(db)))
	activityHandler := NewActivityHandler(services.NewActivityService(repository.NewActivityRepository(db)))

	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()
	router := gin.New()
	RegisterRoutes(router, userHandler, activityHandler)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return userTestEnv{db: db, router: router}
}

func (env userTestEnv) request(t *testing.T, method, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Create(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodPost, "/users/", map[string]string{
		"name":  "Test",
		"email": "test@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Test", body["name"])
	require.NotZero(t, body["user_id"])
	require.NotContains(t, body, "email")

	// The email is still stored.
	var stored models.User
	require.NoError(t, env.db.First(&stored).Error)
	require.Equal(t, "test@example.com", stored.Email)
}

func TestUserHandler_Create_IncompleteBody(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodPost, "/users/", map[string]string{
		"name": "Test",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUserHandler_Create_UnknownField(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodPost, "/users/", map[string]string{
		"name":    "Test",
		"email":   "test@example.com",
		"unknown": "field",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var count int64
	env.db.Model(&models.User{}).Count(&count)
	require.Zero(t, count)
}

func TestUserHandler_Create_WrongFieldType(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodPost, "/users/", map[string]any{
		"name":  "Test",
		"email": 57864587,
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUserHandler_List(t *testing.T) {
	env := setupUserTestEnv(t)

	env.db.Create(&models.User{Name: "test_1", Email: "one@example.com"})
	env.db.Create(&models.User{Name: "test_2", Email: "two@example.com"})

	w := env.request(t, http.MethodGet, "/users/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	require.Equal(t, "test_1", body[0]["name"])
	for _, item := range body {
		require.NotContains(t, item, "email")
	}
}

func TestUserHandler_List_Pagination(t *testing.T) {
	env := setupUserTestEnv(t)

	env.db.Create(&models.User{Name: "first", Email: "a@example.com"})
	env.db.Create(&models.User{Name: "second", Email: "b@example.com"})
	env.db.Create(&models.User{Name: "third", Email: "c@example.com"})

	w := env.request(t, http.MethodGet, "/users/?offset=1&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	require.Equal(t, "second", body[0]["name"])
}

func TestUserHandler_Get(t *testing.T) {
	env := setupUserTestEnv(t)

	user := models.User{Name: "lucy", Email: "lucy@example.com"}
	env.db.Create(&user)

	w := env.request(t, http.MethodGet, "/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, float64(user.UserID), body["user_id"])
	require.Equal(t, "lucy", body["name"])
	require.NotContains(t, body, "email")
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	env := setupUserTestEnv(t)

	env.db.Create(&models.User{Name: "one", Email: "one@example.com"})
	env.db.Create(&models.User{Name: "two", Email: "two@example.com"})

	w := env.request(t, http.MethodGet, "/users/3", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"detail": "User not found"}`, w.Body.String())

	// Non-integer id behaves the same as an absent row.
	w = env.request(t, http.MethodGet, "/users/abc", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler_Update_Partial(t *testing.T) {
	env := setupUserTestEnv(t)

	user := models.User{Name: "before", Email: "keep@example.com"}
	env.db.Create(&user)

	w := env.request(t, http.MethodPatch, "/users/1", map[string]string{
		"name": "updated",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "updated", body["name"])

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.UserID).Error)
	require.Equal(t, "updated", stored.Name)
	require.Equal(t, "keep@example.com", stored.Email)
	require.Equal(t, user.UserID, stored.UserID)
}

func TestUserHandler_Update_NotFound(t *testing.T) {
	env := setupUserTestEnv(t)

	w := env.request(t, http.MethodPatch, "/users/42", map[string]string{
		"name": "updated",
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"detail": "User not found"}`, w.Body.String())
}

func TestUserHandler_Delete(t *testing.T) {
	env := setupUserTestEnv(t)

	user := models.User{Name: "gone", Email: "gone@example.com"}
	env.db.Create(&user)

	w := env.request(t, http.MethodDelete, "/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message": "User_id 1 deleted"}`, w.Body.String())

	w = env.request(t, http.MethodGet, "/users/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Deleting an already-absent id is a 404 too.
	w = env.request(t, http.MethodDelete, "/users/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
