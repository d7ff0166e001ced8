// file: internals/features/enrollments/route/enrollment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	enrollmentController "semillero_backend/internals/features/enrollments/controller"
)

func EnrollmentRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := enrollmentController.NewEnrollmentController(db)

	enrollments := app.Group("/enrollments")
	enrollments.Get("/", ctrl.List)
	enrollments.Get("/:id", ctrl.GetByID)
	enrollments.Post("/", ctrl.Create)
	enrollments.Delete("/:id", ctrl.Delete)
}
