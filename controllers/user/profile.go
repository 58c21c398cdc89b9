package userController

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"homelearn/config"
	"homelearn/database"
	"homelearn/middleware"
	"homelearn/models"
	"homelearn/utils"

	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully", user.Summary())
}

// UpdateProfile accepts a multipart form with optional username, biography and
// profilePic fields. Uploaded pictures are reduced to a 200x200 JPEG
// thumbnail and served from the uploads dir; the raw upload is removed.
func UpdateProfile(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	username := strings.TrimSpace(c.FormValue("username"))
	if username == "" {
		username = user.Username
	}
	if username == "" {
		username = fmt.Sprintf("User_%d", user.ID)
	}

	biography := c.FormValue("biography")
	profilePic := user.ProfilePic

	if file, err := c.FormFile("profilePic"); err == nil && file != nil {
		tmpPath, err := utils.SaveUploadedFile(file, utils.TmpUploadDir(config.AppConfig.UploadDir))
		if err != nil {
			log.Printf("Error saving uploaded picture: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile", nil)
		}

		thumbName := fmt.Sprintf("profile-%d-%d.jpg", user.ID, time.Now().UnixMilli())
		thumbPath := filepath.Join(config.AppConfig.UploadDir, thumbName)
		if err := utils.MakeProfileThumbnail(tmpPath, thumbPath); err != nil {
			os.Remove(tmpPath)
			log.Printf("Error processing profile picture: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile", nil)
		}
		os.Remove(tmpPath)

		// Stored relative so clients prepend their /uploads base
		profilePic = filepath.ToSlash(thumbPath)
	}

	updates := map[string]interface{}{
		"username":    username,
		"biography":   biography,
		"profile_pic": profilePic,
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully", fiber.Map{
		"username":    username,
		"biography":   biography,
		"profile_pic": profilePic,
	})
}
