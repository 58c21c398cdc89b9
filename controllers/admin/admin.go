package adminController

import (
	"log"

	"homelearn/database"
	"homelearn/middleware"
	"homelearn/models"

	"github.com/gofiber/fiber/v2"
)

// ListUsers returns every account with its enrollment and completion counts.
func ListUsers(c *fiber.Ctx) error {
	db := database.Database.Db

	var users []models.User
	if err := db.Order("created_at desc").Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	result := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		var enrolledCourses, completedLevels int64
		db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrolledCourses)
		db.Model(&models.Progress{}).Where("user_id = ?", user.ID).Count(&completedLevels)

		result = append(result, fiber.Map{
			"id":               user.ID,
			"username":         user.Username,
			"email":            user.Email,
			"user_code":        user.UserCode,
			"is_admin":         user.IsAdmin,
			"created_at":       user.CreatedAt,
			"enrolled_courses": enrolledCourses,
			"completed_levels": completedLevels,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", result)
}

// ListLogs returns the most recent activity log entries, newest first.
func ListLogs(c *fiber.Ctx) error {
	var logs []models.ActivityLog
	if err := database.Database.Db.Order("created_at desc").Limit(100).Find(&logs).Error; err != nil {
		log.Printf("Error fetching logs: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch logs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logs fetched successfully!", logs)
}
