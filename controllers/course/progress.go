package courseController

import (
	"errors"
	"log"
	"time"

	"homelearn/database"
	"homelearn/middleware"
	"homelearn/models"
	"homelearn/realtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LevelNotifier receives level-completion events. Swappable in tests.
var LevelNotifier realtime.Notifier = realtime.Default

// CompleteLevel marks a level completed for the caller. The insert is
// idempotent: completing an already-completed level (including two racing
// requests) leaves exactly one progress row and both calls succeed. Every
// completion publishes an event to the course channel.
func CompleteLevel(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	courseID := c.Locals("validatedCourseId").(uint)
	levelID := c.Locals("validatedLevelId").(uint)
	db := database.Database.Db

	// The level must exist and belong to the course in the path.
	var level models.CourseLevel
	if err := db.Where("id = ? AND course_id = ?", levelID, courseID).First(&level).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Level not found", nil)
		}
		log.Printf("Error fetching level: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark level as complete!", nil)
	}

	progress := models.Progress{
		UserID:      user.ID,
		LevelID:     level.ID,
		CompletedAt: time.Now(),
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&progress).Error; err != nil {
		log.Printf("Error recording progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark level as complete!", nil)
	}

	LevelNotifier.Publish(courseID, realtime.Event{
		Event: "level-completed",
		Data: fiber.Map{
			"userId":   user.ID,
			"levelId":  level.ID,
			"username": user.Username,
		},
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Level completed", nil)
}
