// file: internals/features/courses/route/course_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "semillero_backend/internals/features/courses/controller"
)

func CourseRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := courseController.NewCourseController(db)

	courses := app.Group("/courses")
	courses.Get("/", ctrl.List)
	courses.Get("/:id", ctrl.GetByID)
	courses.Post("/", ctrl.Create)
	courses.Put("/:id", ctrl.Update)
	courses.Delete("/:id", ctrl.Delete)
}
