package courseController

import (
	"log"
	"os"

	"homelearn/config"
	"homelearn/database"
	"homelearn/middleware"
	"homelearn/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadCourse ingests a course from an uploaded JSON file. The temp file is
// removed once ingestion finishes, successfully or not.
func UploadCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	file, err := c.FormFile("courseFile")
	if err != nil || file == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded", nil)
	}

	tmpPath, err := utils.SaveUploadedFile(file, utils.TmpUploadDir(config.AppConfig.UploadDir))
	if err != nil {
		log.Printf("Error saving course file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload course!", nil)
	}
	defer os.Remove(tmpPath)

	raw, err := os.ReadFile(tmpPath)
	if err != nil {
		log.Printf("Error reading course file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload course!", nil)
	}

	doc, err := utils.ParseCourseDocument(raw)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	courseID, err := createCourseWithLevels(database.Database.Db, doc, userID)
	if err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to upload course!", nil)
	}

	utils.LogActivity("INFO", "Course uploaded: %s (%d levels)", doc.Title, len(doc.Levels))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course uploaded successfully", fiber.Map{
		"courseId":    courseID,
		"title":       doc.Title,
		"levelsCount": len(doc.Levels),
	})
}
