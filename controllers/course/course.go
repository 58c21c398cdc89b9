package courseController

import (
	"errors"
	"log"

	"homelearn/database"
	"homelearn/middleware"
	"homelearn/models"
	"homelearn/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllCourses lists every course with its creator and level count,
// optionally filtered by a case-insensitive search over title and
// description.
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&models.Course{}).Order("created_at desc")
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		var levelCount int64
		db.Model(&models.CourseLevel{}).Where("course_id = ?", course.ID).Count(&levelCount)

		result = append(result, fiber.Map{
			"id":                  course.ID,
			"title":               course.Title,
			"description":         course.Description,
			"created_by":          course.CreatedBy,
			"created_by_username": usernameOf(db, course.CreatedBy),
			"created_at":          course.CreatedAt,
			"level_count":         levelCount,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// GetMyCourses lists the caller's enrolled courses with their completion
// counts and derived progress percentage. A course with no levels reports 0.
func GetMyCourses(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	db := database.Database.Db

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled courses!", nil)
	}

	result := make([]fiber.Map, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course models.Course
		if err := db.First(&course, enrollment.CourseID).Error; err != nil {
			continue
		}

		totalLevels, completedLevels := courseProgress(db, userID, course.ID)

		var percent float64
		if totalLevels > 0 {
			percent = float64(completedLevels) / float64(totalLevels) * 100
		}

		result = append(result, fiber.Map{
			"id":                  course.ID,
			"title":               course.Title,
			"description":         course.Description,
			"created_by":          course.CreatedBy,
			"created_by_username": usernameOf(db, course.CreatedBy),
			"created_at":          course.CreatedAt,
			"enrolled_at":         enrollment.CreatedAt,
			"total_levels":        totalLevels,
			"completed_levels":    completedLevels,
			"progress_percent":    percent,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", result)
}

// CreateCourse ingests a course document posted as the request body.
func CreateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	doc, err := utils.ParseCourseDocument(c.Body())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	courseID, err := createCourseWithLevels(database.Database.Db, doc, userID)
	if err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	utils.LogActivity("INFO", "Course created: %s (%d levels)", doc.Title, len(doc.Levels))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully", fiber.Map{
		"courseId":    courseID,
		"title":       doc.Title,
		"levelsCount": len(doc.Levels),
	})
}

// GetCourseDetails returns a course with its ordered levels, each annotated
// with the caller's completion flag, plus the caller's enrollment state.
func GetCourseDetails(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("validatedCourseId").(uint)
	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course details!", nil)
	}

	var levels []models.CourseLevel
	if err := db.Where("course_id = ?", course.ID).Order("level_order").Find(&levels).Error; err != nil {
		log.Printf("Error fetching levels: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course details!", nil)
	}

	completed := completedLevelSet(db, userID, course.ID)

	levelList := make([]fiber.Map, 0, len(levels))
	for _, level := range levels {
		levelList = append(levelList, fiber.Map{
			"id":           level.ID,
			"course_id":    level.CourseID,
			"level_number": level.LevelNumber,
			"level_order":  level.LevelOrder,
			"title":        level.Title,
			"topics":       level.Topics,
			"objectives":   level.Objectives,
			"tools":        level.Tools,
			"resources":    level.Resources,
			"content":      level.Content,
			"completed":    completed[level.ID],
		})
	}

	var enrollmentCount int64
	db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", userID, course.ID).Count(&enrollmentCount)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"id":                  course.ID,
		"title":               course.Title,
		"description":         course.Description,
		"created_by":          course.CreatedBy,
		"created_by_username": usernameOf(db, course.CreatedBy),
		"created_at":          course.CreatedAt,
		"levels":              levelList,
		"isEnrolled":          enrollmentCount > 0,
	})
}

// DeleteCourse removes a course and everything hanging off it. Only the
// creator or an admin may delete; the cascade runs in one transaction so a
// failure leaves no orphaned rows.
func DeleteCourse(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	courseID := c.Locals("validatedCourseId").(uint)
	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found", nil)
		}
		log.Printf("Error fetching course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if course.CreatedBy != user.ID && !user.IsAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete courses you created", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		levelIDs := tx.Model(&models.CourseLevel{}).Select("id").Where("course_id = ?", course.ID)
		if err := tx.Where("level_id IN (?)", levelIDs).Delete(&models.Progress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.CourseLevel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, course.ID).Error
	})
	if err != nil {
		log.Printf("Error deleting course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	utils.LogActivity("INFO", "Course deleted: %s by %s", course.Title, user.Username)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", nil)
}

func usernameOf(db *gorm.DB, userID uint) string {
	var user models.User
	if err := db.Select("username").First(&user, userID).Error; err != nil {
		return ""
	}
	return user.Username
}

// courseProgress counts the course's levels and how many of them the user
// has completed.
func courseProgress(db *gorm.DB, userID, courseID uint) (total, completed int64) {
	db.Model(&models.CourseLevel{}).Where("course_id = ?", courseID).Count(&total)

	levelIDs := db.Model(&models.CourseLevel{}).Select("id").Where("course_id = ?", courseID)
	db.Model(&models.Progress{}).Where("user_id = ? AND level_id IN (?)", userID, levelIDs).Count(&completed)
	return total, completed
}

func completedLevelSet(db *gorm.DB, userID, courseID uint) map[uint]bool {
	levelIDs := db.Model(&models.CourseLevel{}).Select("id").Where("course_id = ?", courseID)

	var rows []models.Progress
	db.Where("user_id = ? AND level_id IN (?)", userID, levelIDs).Find(&rows)

	set := make(map[uint]bool, len(rows))
	for _, row := range rows {
		set[row.LevelID] = true
	}
	return set
}
