package courseController_test

import (
	"fmt"
	"testing"

	"homelearn/database"
	"homelearn/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCourseCascades(t *testing.T) {
	app, _ := setupTestApp(t)
	_, ownerToken := newUser(t, "owner", false)
	courseID := createCourse(t, app, ownerToken, "c1", "c2")

	status, _ := doJSON(t, app, "POST", fmt.Sprintf("/api/courses/%d/enroll", courseID), ownerToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	var level models.CourseLevel
	require.NoError(t, database.Database.Db.
		Where("course_id = ? AND level_order = 1", courseID).First(&level).Error)
	status, _ = doJSON(t, app, "POST",
		fmt.Sprintf("/api/course/%d/level/%d/complete", courseID, level.ID), ownerToken, nil)
	require.Equal(t, fiber.StatusOK, status)

	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/courses/%d", courseID), ownerToken, nil)
	assert.Equal(t, fiber.StatusOK, status)

	db := database.Database.Db
	var count int64

	db.Model(&models.Course{}).Where("id = ?", courseID).Count(&count)
	assert.Equal(t, int64(0), count, "course row remains")

	db.Model(&models.CourseLevel{}).Where("course_id = ?", courseID).Count(&count)
	assert.Equal(t, int64(0), count, "level rows remain")

	db.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&count)
	assert.Equal(t, int64(0), count, "enrollment rows remain")

	db.Model(&models.Progress{}).Where("level_id = ?", level.ID).Count(&count)
	assert.Equal(t, int64(0), count, "progress rows remain")
}

func TestDeleteCourseRequiresOwnerOrAdmin(t *testing.T) {
	app, _ := setupTestApp(t)
	_, ownerToken := newUser(t, "author", false)
	_, strangerToken := newUser(t, "stranger", false)
	_, adminToken := newUser(t, "boss", true)

	courseID := createCourse(t, app, ownerToken, "x1")

	status, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/api/courses/%d", courseID), strangerToken, nil)
	assert.Equal(t, fiber.StatusForbidden, status)

	// Admins may delete courses they do not own
	status, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/api/courses/%d", courseID), adminToken, nil)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestDeleteCourseNotFound(t *testing.T) {
	app, _ := setupTestApp(t)
	_, token := newUser(t, "deleter", false)

	status, _ := doJSON(t, app, "DELETE", "/api/courses/99999", token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}
