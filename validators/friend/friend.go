package friendValidator

import (
	"strings"

	"homelearn/middleware"

	"github.com/gofiber/fiber/v2"
)

type SendRequestBody struct {
	UserCode string `json:"userCode"`
}

type RespondBody struct {
	Action string `json:"action"`
}

// SendRequest validator middleware
func SendRequest() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SendRequestBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.UserCode = strings.ToUpper(strings.TrimSpace(reqData.UserCode))
		if reqData.UserCode == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"userCode": "User code is required!",
			})
		}

		c.Locals("validatedFriendRequest", reqData)
		return c.Next()
	}
}

// Respond validator middleware. Only accept and reject are valid actions.
func Respond() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID, err := c.ParamsInt("id")
		if err != nil || requestID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid friendship id!", nil)
		}

		reqData := new(RespondBody)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Action != "accept" && reqData.Action != "reject" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"action": "Action must be accept or reject!",
			})
		}

		c.Locals("validatedFriendshipId", uint(requestID))
		c.Locals("validatedFriendAction", reqData.Action)
		return c.Next()
	}
}
