// file: internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "semillero_backend/internals/features/users/dto"
	userModel "semillero_backend/internals/features/users/model"
	"semillero_backend/internals/features/users/service"
	helper "semillero_backend/internals/helpers"
)

type UserController struct {
	DB    *gorm.DB
	Roles *service.RoleResolver
}

func NewUserController(db *gorm.DB, roles *service.RoleResolver) *UserController {
	return &UserController{DB: db, Roles: roles}
}

var validateUser = validator.New()

// ===================== HEALTH =====================
// GET /users/health
func (h *UserController) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": "users"})
}

// ===================== RESOLVE =====================
// POST /users/resolve
func (h *UserController) Resolve(c *fiber.Ctx) error {
	var req userDTO.ResolveRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateUser.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	user, err := h.resolveOrCreate(req.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo resolver el usuario")
	}
	return helper.JsonOK(c, "ok", userDTO.NewUserResponse(user))
}

// ===================== ME =====================
// GET /users/me?email=
func (h *UserController) Me(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "email is required")
	}

	user, err := h.resolveOrCreate(email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo resolver el usuario")
	}
	return helper.JsonOK(c, "ok", userDTO.NewUserResponse(user))
}

// resolveOrCreate busca (o crea) el usuario por correo normalizado y
// actualiza el rol almacenado si la resolución cambió.
func (h *UserController) resolveOrCreate(email string) (*userModel.UserModel, error) {
	e := strings.ToLower(strings.TrimSpace(email))
	role := h.Roles.Resolve(e)

	var user userModel.UserModel
	err := h.DB.Where("email = ?", e).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = userModel.UserModel{Email: e, Role: role}
		if err := h.DB.Create(&user).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if user.Role != role {
			if err := h.DB.Model(&user).Update("role", role).Error; err != nil {
				return nil, err
			}
		}
	}
	return &user, nil
}
