package friendController

import (
	"errors"
	"log"

	"homelearn/database"
	"homelearn/middleware"
	"homelearn/models"
	friendValidator "homelearn/validators/friend"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListFriendships partitions every friendship touching the caller into the
// accepted friends view and the pending requests view. Pending entries are
// annotated with whether the caller sent or received them.
func ListFriendships(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	db := database.Database.Db

	var rows []models.Friendship
	if err := db.Where("requester_id = ? OR addressee_id = ?", userID, userID).
		Order("created_at desc").Find(&rows).Error; err != nil {
		log.Printf("Error fetching friendships: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch friends!", nil)
	}

	friends := make([]fiber.Map, 0)
	pending := make([]fiber.Map, 0)

	for _, row := range rows {
		otherID := row.RequesterID
		requestType := "received"
		if row.RequesterID == userID {
			otherID = row.AddresseeID
			requestType = "sent"
		}

		var other models.User
		if err := db.First(&other, otherID).Error; err != nil {
			continue
		}

		entry := fiber.Map{
			"id":                 row.ID,
			"friend_id":          other.ID,
			"friend_username":    other.Username,
			"friend_user_code":   other.UserCode,
			"friend_profile_pic": other.ProfilePic,
			"created_at":         row.CreatedAt,
		}

		switch row.Status {
		case models.FriendshipAccepted:
			friends = append(friends, entry)
		case models.FriendshipPending:
			entry["request_type"] = requestType
			pending = append(pending, entry)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Friends fetched successfully!", fiber.Map{
		"friends": friends,
		"pending": pending,
	})
}

// SendRequest creates a pending friendship addressed by user code. A row in
// either direction, whatever its status, makes the pair a conflict.
func SendRequest(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("validatedFriendRequest").(*friendValidator.SendRequestBody)
	db := database.Database.Db

	var addressee models.User
	if err := db.Where("user_code = ?", reqData.UserCode).First(&addressee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found", nil)
		}
		log.Printf("Error resolving user code: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send friend request!", nil)
	}

	if addressee.ID == userID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot befriend yourself", nil)
	}

	var existing int64
	db.Model(&models.Friendship{}).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userID, addressee.ID, addressee.ID, userID).
		Count(&existing)
	if existing > 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Friend request already exists", nil)
	}

	friendship := models.Friendship{
		RequesterID: userID,
		AddresseeID: addressee.ID,
		Status:      models.FriendshipPending,
	}
	if err := db.Create(&friendship).Error; err != nil {
		log.Printf("Error creating friendship: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send friend request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Friend request sent", fiber.Map{
		"id": friendship.ID,
	})
}

// Respond lets the addressee accept or reject a pending request. Accept
// transitions the row to accepted; reject deletes it. Only rows addressed to
// the caller are visible here.
func Respond(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	friendshipID := c.Locals("validatedFriendshipId").(uint)
	action := c.Locals("validatedFriendAction").(string)
	db := database.Database.Db

	var friendship models.Friendship
	if err := db.Where("id = ? AND addressee_id = ? AND status = ?",
		friendshipID, userID, models.FriendshipPending).First(&friendship).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Friend request not found", nil)
		}
		log.Printf("Error fetching friendship: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to respond to friend request!", nil)
	}

	if action == "accept" {
		if err := db.Model(&friendship).Update("status", models.FriendshipAccepted).Error; err != nil {
			log.Printf("Error accepting friendship: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to respond to friend request!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Friend request accepted", nil)
	}

	if err := db.Delete(&friendship).Error; err != nil {
		log.Printf("Error rejecting friendship: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to respond to friend request!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Friend request rejected", nil)
}
