package routes

import (
	"edubridge/backend/config"
	"edubridge/backend/controllers"
	"edubridge/backend/middleware"
	"edubridge/backend/models"
	"edubridge/backend/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	enrollmentService := services.NewEnrollmentService(db)
	progressService := services.NewProgressService(db)
	dashboardService := services.NewDashboardService(db)

	authMiddleware := middleware.AuthMiddleware(db, cfg)
	instructorOnly := middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin)

	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Get("/api/auth/me", authMiddleware, authController.Me)

	// Course routes
	coursesController := controllers.NewCoursesController(db, enrollmentService)
	app.Post("/api/courses", authMiddleware, instructorOnly, coursesController.CreateCourse)
	app.Get("/api/courses", coursesController.GetCourses)
	app.Get("/api/courses/:id", coursesController.GetCourse)
	app.Put("/api/courses/:id", authMiddleware, coursesController.UpdateCourse)
	app.Delete("/api/courses/:id", authMiddleware, coursesController.DeleteCourse)
	app.Post("/api/courses/:id/enroll", authMiddleware, coursesController.Enroll)

	// Progress routes
	progressController := controllers.NewProgressController(progressService)
	app.Get("/api/progress/:courseId", authMiddleware, progressController.GetProgress)
	app.Post("/api/progress/:courseId/lesson", authMiddleware, progressController.CompleteLesson)
	app.Post("/api/progress/:courseId/quiz", authMiddleware, progressController.RecordQuizScore)

	// Dashboard routes
	dashboardController := controllers.NewDashboardController(dashboardService)
	app.Get("/api/dashboard", authMiddleware, dashboardController.GetDashboard)

	// Health check
	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "OK",
			"message": "EduBridge API is running",
		})
	})
}
