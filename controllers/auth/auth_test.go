package authController_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"homelearn/config"
	"homelearn/database"
	"homelearn/models"
	authRoutes "homelearn/routers/authRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:    "testsecret",
		SaltRound: 4,
		UploadDir: t.TempDir(),
	}

	db, err := gorm.Open(sqlite.Open("file:authtest?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() {
		db.Migrator().DropTable(
			&models.User{}, &models.Course{}, &models.CourseLevel{},
			&models.Enrollment{}, &models.Progress{}, &models.Friendship{},
			&models.ActivityLog{},
		)
	})

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupTestApp(t)

	status, result := postJSON(t, app, "/api/auth/register", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusCreated, status)

	data := result["data"].(map[string]interface{})
	assert.Equal(t, "alice", data["username"])
	assert.NotEmpty(t, data["userCode"])
	assert.Contains(t, data["userCode"], "USER")

	status, result = postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusOK, status)

	data = result["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "alice", data["user"].(map[string]interface{})["username"])
}

func TestRegisterDuplicate(t *testing.T) {
	app := setupTestApp(t)

	status, _ := postJSON(t, app, "/api/auth/register", map[string]string{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusCreated, status)

	// Same email
	status, _ = postJSON(t, app, "/api/auth/register", map[string]string{
		"username": "bob2",
		"email":    "bob@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	// Same username
	status, _ = postJSON(t, app, "/api/auth/register", map[string]string{
		"username": "bob",
		"email":    "other@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestRegisterShortPasswordLeavesNoAccount(t *testing.T) {
	app := setupTestApp(t)

	status, _ := postJSON(t, app, "/api/auth/register", map[string]string{
		"username": "carol",
		"email":    "carol@example.com",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	var count int64
	database.Database.Db.Model(&models.User{}).Where("email = ?", "carol@example.com").Count(&count)
	assert.Equal(t, int64(0), count)

	// The rejected registration must not be loginable
	status, _ = postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    "carol@example.com",
		"password": "short",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupTestApp(t)

	status, _ := postJSON(t, app, "/api/auth/register", map[string]string{
		"username": "dave",
		"email":    "dave@example.com",
		"password": "password123",
	})
	assert.Equal(t, fiber.StatusCreated, status)

	status, _ = postJSON(t, app, "/api/auth/login", map[string]string{
		"email":    "dave@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
