package models

import "time"

// Progress records that a user completed a course level. The (user, level)
// pair is unique and the row is written at most once; re-completing a level
// is a no-op at the controller layer and at the database layer.
type Progress struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_level"`
	LevelID     uint      `json:"level_id" gorm:"not null;uniqueIndex:idx_progress_user_level"`
	CompletedAt time.Time `json:"completed_at"`
}
