// file: internals/features/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentController "semillero_backend/internals/features/assignments/controller"
)

func AssignmentRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := assignmentController.NewAssignmentController(db)
	subCtrl := assignmentController.NewSubmissionController(db)

	assignments := app.Group("/assignments")

	// submissions va primero para que "submissions" no se capture como :id
	submissions := assignments.Group("/submissions")
	submissions.Get("/", subCtrl.List)
	submissions.Get("/:id", subCtrl.GetByID)
	submissions.Post("/", subCtrl.Create)
	submissions.Put("/:id", subCtrl.Update)
	submissions.Delete("/:id", subCtrl.Delete)

	assignments.Get("/", ctrl.List)
	assignments.Get("/:id", ctrl.GetByID)
	assignments.Post("/", ctrl.Create)
	assignments.Put("/:id", ctrl.Update)
	assignments.Delete("/:id", ctrl.Delete)
}
