package authController

import (
	"log"

	"homelearn/config"
	"homelearn/database"
	"homelearn/middleware"
	"homelearn/models"
	"homelearn/utils"
	authValidator "homelearn/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Duplicate email or username both reject registration
	var existing models.User
	if err := db.Where("email = ? OR username = ?", reqData.Email, reqData.Username).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "User already exists", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed", nil)
	}

	newUser := models.User{
		Username: reqData.Username,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		UserCode: generateUniqueUserCode(db),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Registration failed", nil)
	}

	utils.LogActivity("INFO", "User registered: %s", newUser.Username)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully", fiber.Map{
		"id":        newUser.ID,
		"username":  newUser.Username,
		"email":     newUser.Email,
		"userCode":  newUser.UserCode,
		"isAdmin":   newUser.IsAdmin,
		"createdAt": newUser.CreatedAt,
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials", nil)
	}

	token, err := middleware.GenerateJWT(user.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Login failed", nil)
	}

	utils.LogActivity("INFO", "User logged in: %s", user.Username)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{
		"token": token,
		"user":  user.Summary(),
	})
}

// generateUniqueUserCode retries on the rare collision with an existing code.
func generateUniqueUserCode(db *gorm.DB) string {
	for i := 0; i < 5; i++ {
		code := utils.GenerateUserCode()
		var count int64
		db.Model(&models.User{}).Where("user_code = ?", code).Count(&count)
		if count == 0 {
			return code
		}
	}
	return utils.GenerateUserCode()
}
