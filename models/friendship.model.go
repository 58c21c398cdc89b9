package models

import "time"

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
)

// Friendship links two users. At most one row exists per unordered pair; the
// controller checks both orderings before inserting. A pending row is owned
// by the requester and either accepted (status update) or rejected (deleted)
// by the addressee.
type Friendship struct {
	ID          uint             `json:"id" gorm:"primaryKey"`
	RequesterID uint             `json:"requester_id" gorm:"index;not null"`
	AddresseeID uint             `json:"addressee_id" gorm:"index;not null"`
	Status      FriendshipStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
