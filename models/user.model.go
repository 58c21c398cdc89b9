package models

import "time"

// User is an account on the platform. Users are never hard-deleted.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Username   string    `json:"username" gorm:"uniqueIndex;not null"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Password   string    `json:"-" gorm:"not null"`
	UserCode   string    `json:"user_code" gorm:"uniqueIndex;not null"`
	IsAdmin    bool      `json:"is_admin" gorm:"default:false"`
	ProfilePic string    `json:"profile_pic"`
	Biography  string    `json:"biography"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Summary is the user shape returned by the auth and profile endpoints.
func (u *User) Summary() map[string]interface{} {
	return map[string]interface{}{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"userCode":   u.UserCode,
		"isAdmin":    u.IsAdmin,
		"profilePic": u.ProfilePic,
		"biography":  u.Biography,
		"createdAt":  u.CreatedAt,
	}
}
