package models

import (
	"time"

	"gorm.io/datatypes"
)

// Course is a learning route owned by the user that created it.
type Course struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	CreatedBy   uint      `json:"created_by" gorm:"index;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// CourseLevel is one ordered stage of a course. Levels are written once at
// course creation and only ever removed by deleting the whole course.
type CourseLevel struct {
	ID          uint                       `json:"id" gorm:"primaryKey"`
	CourseID    uint                       `json:"course_id" gorm:"index;not null;uniqueIndex:idx_course_level_order"`
	LevelNumber int                        `json:"level_number" gorm:"not null"`
	LevelOrder  int                        `json:"level_order" gorm:"not null;uniqueIndex:idx_course_level_order"`
	Title       string                     `json:"title"`
	Topics      datatypes.JSONSlice[string] `json:"topics"`
	Objectives  datatypes.JSONSlice[string] `json:"objectives"`
	Tools       datatypes.JSONSlice[string] `json:"tools"`
	Resources   datatypes.JSONSlice[string] `json:"resources"`
	// Content duplicates the four lists as a single JSON document for clients
	// that want the level in one field.
	Content   datatypes.JSON `json:"content"`
	CreatedAt time.Time      `json:"created_at"`
}
