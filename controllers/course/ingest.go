package courseController

import (
	"encoding/json"

	"homelearn/models"
	"homelearn/utils"

	"gorm.io/gorm"
)

// createCourseWithLevels persists a parsed course document. The course row
// and all of its level rows are written in a single transaction; a failed
// level insert rolls back the course so no orphan course can exist.
func createCourseWithLevels(db *gorm.DB, doc *utils.CourseDocument, createdBy uint) (uint, error) {
	var courseID uint

	err := db.Transaction(func(tx *gorm.DB) error {
		course := models.Course{
			Title:       doc.Title,
			Description: doc.Description,
			CreatedBy:   createdBy,
		}
		if err := tx.Create(&course).Error; err != nil {
			return err
		}

		for i, levelData := range doc.Levels {
			content, err := json.Marshal(map[string][]string{
				"topics":     levelData.Topics,
				"objectives": levelData.Objectives,
				"tools":      levelData.Tools,
				"resources":  levelData.Resources,
			})
			if err != nil {
				return err
			}

			level := models.CourseLevel{
				CourseID:    course.ID,
				LevelNumber: i + 1,
				LevelOrder:  i + 1,
				Title:       levelData.Title,
				Topics:      levelData.Topics,
				Objectives:  levelData.Objectives,
				Tools:       levelData.Tools,
				Resources:   levelData.Resources,
				Content:     content,
			}
			if err := tx.Create(&level).Error; err != nil {
				return err
			}
		}

		courseID = course.ID
		return nil
	})

	return courseID, err
}
