package courseController

import (
	"errors"
	"log"

	"homelearn/database"
	"homelearn/middleware"
	"homelearn/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Enroll subscribes the caller to a course. Enrolling twice is a conflict.
func Enroll(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("validatedCourseId").(uint)
	db := database.Database.Db

	if err := db.First(&models.Course{}, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
	}

	var existing int64
	db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", userID, courseID).Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Already enrolled in this course", nil)
	}

	enrollment := models.Enrollment{UserID: userID, CourseID: courseID}
	if err := db.Create(&enrollment).Error; err != nil {
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled successfully", nil)
}

// Unsubscribe removes the caller's enrollment. Removing a nonexistent
// enrollment still succeeds.
func Unsubscribe(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("validatedCourseId").(uint)

	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&models.Enrollment{}).Error; err != nil {
		log.Printf("Error removing enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unsubscribe!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Unsubscribed successfully", nil)
}
