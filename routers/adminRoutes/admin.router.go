package adminRoutes

import (
	adminController "homelearn/controllers/admin"
	"homelearn/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin", middleware.JWTMiddleware, middleware.AdminMiddleware)

	adminGroup.Get("/users", adminController.ListUsers)
	adminGroup.Get("/logs", adminController.ListLogs)
}
