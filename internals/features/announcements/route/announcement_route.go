// file: internals/features/announcements/route/announcement_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementController "semillero_backend/internals/features/announcements/controller"
)

func AnnouncementRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := announcementController.NewAnnouncementController(db)

	announcements := app.Group("/announcements")
	announcements.Get("/", ctrl.List)
	announcements.Get("/:id", ctrl.GetByID)
	announcements.Post("/", ctrl.Create)
	announcements.Put("/:id", ctrl.Update)
	announcements.Patch("/:id", ctrl.Update)
	announcements.Delete("/:id", ctrl.Delete)
}
