package utils

import (
	"fmt"
	"log"

	"homelearn/database"
	"homelearn/models"
)

// LogActivity writes an application event to the activity log served under
// /api/admin/logs. Failures are logged and swallowed; the triggering request
// must not fail because the audit row could not be written.
func LogActivity(level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("[%s] %s", level, message)

	entry := models.ActivityLog{Level: level, Message: message}
	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("Error writing activity log: %v", err)
	}
}
