package friendRoutes

import (
	friendController "homelearn/controllers/friend"
	"homelearn/middleware"
	friendValidator "homelearn/validators/friend"

	"github.com/gofiber/fiber/v2"
)

func SetupFriendRoutes(app *fiber.App) {
	friendGroup := app.Group("/api/friends", middleware.JWTMiddleware)

	friendGroup.Get("/", friendController.ListFriendships)
	friendGroup.Post("/request", friendValidator.SendRequest(), friendController.SendRequest)
	friendGroup.Put("/:id", friendValidator.Respond(), friendController.Respond)
}
