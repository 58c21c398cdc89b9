package courseRoutes

import (
	courseController "homelearn/controllers/course"
	"homelearn/middleware"
	courseValidator "homelearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course, enrollment and progress routes
func SetupCourseRoutes(app *fiber.App) {
	app.Get("/api/courses", middleware.JWTMiddleware, courseController.GetAllCourses)
	app.Get("/api/my-courses", middleware.JWTMiddleware, courseController.GetMyCourses)
	app.Post("/api/courses", middleware.JWTMiddleware, courseController.CreateCourse)
	app.Post("/api/courses/upload", middleware.JWTMiddleware, courseController.UploadCourse)

	app.Get("/api/course/:id", middleware.JWTMiddleware, courseValidator.CourseID(), courseController.GetCourseDetails)
	app.Post("/api/courses/:id/enroll", middleware.JWTMiddleware, courseValidator.CourseID(), courseController.Enroll)
	app.Delete("/api/courses/:id/unsubscribe", middleware.JWTMiddleware, courseValidator.CourseID(), courseController.Unsubscribe)
	app.Delete("/api/courses/:id", middleware.JWTMiddleware, courseValidator.CourseID(), courseController.DeleteCourse)

	app.Post("/api/course/:courseId/level/:levelId/complete",
		middleware.JWTMiddleware, courseValidator.CompleteLevel(), courseController.CompleteLevel)
}
