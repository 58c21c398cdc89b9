package userRoutes

import (
	userController "homelearn/controllers/user"
	"homelearn/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	app.Get("/api/profile", middleware.JWTMiddleware, userController.GetProfile)
	app.Put("/api/profile", middleware.JWTMiddleware, userController.UpdateProfile)
}
