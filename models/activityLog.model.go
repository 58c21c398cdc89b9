package models

import "time"

// ActivityLog is an application event visible to administrators under
// /api/admin/logs.
type ActivityLog struct {
	ID        uint      `json:"-" gorm:"primaryKey"`
	Level     string    `json:"level" gorm:"not null"` // INFO, WARN, ERROR
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"timestamp"`
}
