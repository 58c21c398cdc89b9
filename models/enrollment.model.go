package models

import "time"

// Enrollment subscribes a user to a course. One row per (user, course) pair;
// removed on unsubscribe or when the course is deleted.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CreatedAt time.Time `json:"enrolled_at"`
}
