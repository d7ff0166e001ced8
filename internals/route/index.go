// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"semillero_backend/internals/configs"
	announcementRoute "semillero_backend/internals/features/announcements/route"
	assignmentRoute "semillero_backend/internals/features/assignments/route"
	courseRoute "semillero_backend/internals/features/courses/route"
	enrollmentRoute "semillero_backend/internals/features/enrollments/route"
	notificationRoute "semillero_backend/internals/features/notifications/route"
	userRoute "semillero_backend/internals/features/users/route"
	"semillero_backend/internals/features/users/service"
)

// SetupRoutes arma el resolver de roles desde el entorno y monta todo.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	resolver := service.NewRoleResolver(configs.CoordinatorEmails, configs.TeacherEmails)
	Register(app, db, resolver)
}

// Register monta el health check y los seis routers de entidades.
func Register(app *fiber.App, db *gorm.DB, roles *service.RoleResolver) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "backend"})
	})

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserRoutes(app, db, roles)

	log.Println("[INFO] Mounting Course routes...")
	courseRoute.CourseRoutes(app, db)

	log.Println("[INFO] Mounting Enrollment routes...")
	enrollmentRoute.EnrollmentRoutes(app, db)

	log.Println("[INFO] Mounting Assignment routes...")
	assignmentRoute.AssignmentRoutes(app, db)

	log.Println("[INFO] Mounting Announcement routes...")
	announcementRoute.AnnouncementRoutes(app, db)

	log.Println("[INFO] Mounting Notification routes...")
	notificationRoute.NotificationRoutes(app, db)
}
