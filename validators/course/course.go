package courseValidator

import (
	"homelearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id route parameter and stores it in the context.
func CourseID() fiber.Handler {
	return paramID("id", "validatedCourseId")
}

// CompleteLevel validates the :courseId and :levelId route parameters.
func CompleteLevel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := c.ParamsInt("courseId")
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		levelID, err := c.ParamsInt("levelId")
		if err != nil || levelID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid level id!", nil)
		}
		c.Locals("validatedCourseId", uint(courseID))
		c.Locals("validatedLevelId", uint(levelID))
		return c.Next()
	}
}

func paramID(param, localKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt(param)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		c.Locals(localKey, uint(id))
		return c.Next()
	}
}
