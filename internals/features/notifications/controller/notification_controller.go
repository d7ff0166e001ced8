// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentModel "semillero_backend/internals/features/assignments/model"
	notificationDTO "semillero_backend/internals/features/notifications/dto"
	notificationModel "semillero_backend/internals/features/notifications/model"
	userModel "semillero_backend/internals/features/users/model"
	helper "semillero_backend/internals/helpers"
)

type NotificationController struct{ DB *gorm.DB }

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

var validateNotification = validator.New()

// ===================== LIST =====================
// GET /notifications?skip=&limit=&user_id=&is_read=&category=
func (h *NotificationController) List(c *fiber.Ctx) error {
	p, err := helper.ResolvePaging(c, 100, 500)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := helper.QueryUint(c, "user_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	isRead, err := helper.QueryBool(c, "is_read")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := h.DB.Model(&notificationModel.NotificationModel{})
	if userID != nil {
		tx = tx.Where("user_id = ?", *userID)
	}
	if isRead != nil {
		tx = tx.Where("is_read = ?", *isRead)
	}
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		tx = tx.Where("category = ?", category)
	}

	var rows []notificationModel.NotificationModel
	if err := tx.Order("created_at DESC").Offset(p.Skip).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las notificaciones")
	}

	items := make([]*notificationDTO.NotificationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, notificationDTO.NewNotificationResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", items)
}

// ===================== GET BY ID =====================
// GET /notifications/:id
func (h *NotificationController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var notification notificationModel.NotificationModel
	if err := h.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la notificación")
	}
	return helper.JsonOK(c, "ok", notificationDTO.NewNotificationResponse(&notification))
}

// ===================== CREATE =====================
// POST /notifications
func (h *NotificationController) Create(c *fiber.Ctx) error {
	var req notificationDTO.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateNotification.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, req.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el usuario")
	}

	if req.RelatedAssignmentID != nil {
		var assignment assignmentModel.AssignmentModel
		if err := h.DB.First(&assignment, *req.RelatedAssignmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar la tarea")
		}
	}

	notification := req.ToModel()
	if err := h.DB.Create(notification).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la notificación")
	}
	return helper.JsonCreated(c, "Notification created", notificationDTO.NewNotificationResponse(notification))
}

// ===================== UPDATE (partial) =====================
// PUT /notifications/:id
func (h *NotificationController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var notification notificationModel.NotificationModel
	if err := h.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la notificación")
	}

	var req notificationDTO.UpdateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateNotification.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.ApplyToModel(&notification)
	if err := h.DB.Save(&notification).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la notificación")
	}
	return helper.JsonUpdated(c, "Notification updated", notificationDTO.NewNotificationResponse(&notification))
}

// ===================== MARK READ =====================
// PATCH /notifications/:id/read
func (h *NotificationController) MarkRead(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var notification notificationModel.NotificationModel
	if err := h.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la notificación")
	}

	var req notificationDTO.MarkReadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}

	if err := h.DB.Model(&notification).Update("is_read", req.IsRead).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la notificación")
	}
	return helper.JsonUpdated(c, "Notification updated", notificationDTO.NewNotificationResponse(&notification))
}

// ===================== DELETE (hard) =====================
// DELETE /notifications/:id
func (h *NotificationController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var notification notificationModel.NotificationModel
	if err := h.DB.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la notificación")
	}

	if err := h.DB.Delete(&notification).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar la notificación")
	}
	return helper.JsonDeleted(c, "Notification deleted", fiber.Map{"id": notification.ID})
}
