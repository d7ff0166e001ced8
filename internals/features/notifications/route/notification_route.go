// file: internals/features/notifications/route/notification_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "semillero_backend/internals/features/notifications/controller"
)

func NotificationRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	notifications := app.Group("/notifications")

	// alerts va primero para que "alerts" no se capture como :id
	alerts := notifications.Group("/alerts")
	alerts.Get("/upcoming", ctrl.AlertsUpcoming)
	alerts.Get("/overdue", ctrl.AlertsOverdue)

	notifications.Get("/", ctrl.List)
	notifications.Get("/:id", ctrl.GetByID)
	notifications.Post("/", ctrl.Create)
	notifications.Put("/:id", ctrl.Update)
	notifications.Patch("/:id/read", ctrl.MarkRead)
	notifications.Patch("/:id", ctrl.Update)
	notifications.Delete("/:id", ctrl.Delete)
}
