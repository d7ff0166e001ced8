// file: internals/features/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "semillero_backend/internals/features/users/controller"
	"semillero_backend/internals/features/users/service"
)

func UserRoutes(app fiber.Router, db *gorm.DB, roles *service.RoleResolver) {
	ctrl := userController.NewUserController(db, roles)

	users := app.Group("/users")
	users.Get("/health", ctrl.Health)
	users.Post("/resolve", ctrl.Resolve)
	users.Get("/me", ctrl.Me)
}
