package middleware

import (
	"fmt"
	"strings"
	"time"

	"homelearn/config"
	"homelearn/database"
	"homelearn/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// tokenValidity is the fixed lifetime of issued access tokens.
const tokenValidity = 7 * 24 * time.Hour

// GenerateJWT generates a signed access token for the user
func GenerateJWT(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(tokenValidity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware checks for a valid bearer token and loads the token's user
// into the request context. A missing credential and an unverifiable one are
// reported separately.
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Access token required", nil)
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})
	if err != nil || !token.Valid {
		return JsonResponse(c, fiber.StatusForbidden, false, "Invalid token", nil)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return JsonResponse(c, fiber.StatusForbidden, false, "Invalid token", nil)
	}

	// JWT numeric claims decode as float64
	userID := uint(claims["userId"].(float64))

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid token", nil)
	}

	c.Locals("userId", user.ID)
	c.Locals("user", user)

	return c.Next()
}

// AdminMiddleware requires the authenticated user to be an administrator.
// It must run after JWTMiddleware.
func AdminMiddleware(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Access token required", nil)
	}
	if !user.IsAdmin {
		return JsonResponse(c, fiber.StatusForbidden, false, "Admin access required", nil)
	}
	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}
