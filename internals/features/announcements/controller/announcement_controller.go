// file: internals/features/announcements/controller/announcement_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementDTO "semillero_backend/internals/features/announcements/dto"
	announcementModel "semillero_backend/internals/features/announcements/model"
	userModel "semillero_backend/internals/features/users/model"
	helper "semillero_backend/internals/helpers"
)

type AnnouncementController struct{ DB *gorm.DB }

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

var validateAnnouncement = validator.New()

// ===================== LIST =====================
// GET /announcements?skip=&limit=&is_active=
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	p, err := helper.ResolvePaging(c, 100, 500)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	isActive := true
	if v, err := helper.QueryBool(c, "is_active"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	} else if v != nil {
		isActive = *v
	}

	var rows []announcementModel.AnnouncementModel
	if err := h.DB.Model(&announcementModel.AnnouncementModel{}).
		Where("is_active = ?", isActive).
		Order("created_at DESC").
		Offset(p.Skip).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los anuncios")
	}

	items := make([]*announcementDTO.AnnouncementResponse, 0, len(rows))
	for i := range rows {
		items = append(items, announcementDTO.NewAnnouncementResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", items)
}

// ===================== GET BY ID =====================
// GET /announcements/:id
func (h *AnnouncementController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var announcement announcementModel.AnnouncementModel
	if err := h.DB.First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el anuncio")
	}
	return helper.JsonOK(c, "ok", announcementDTO.NewAnnouncementResponse(&announcement))
}

// ===================== CREATE =====================
// POST /announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	var req announcementDTO.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// El creador es opcional; si viene, debe existir
	if req.CreatedByID != nil {
		var creator userModel.UserModel
		if err := h.DB.First(&creator, *req.CreatedByID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "User not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el creador")
		}
	}

	announcement := req.ToModel()
	if err := h.DB.Create(announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el anuncio")
	}
	return helper.JsonCreated(c, "Announcement created", announcementDTO.NewAnnouncementResponse(announcement))
}

// ===================== UPDATE (partial) =====================
// PUT|PATCH /announcements/:id
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var announcement announcementModel.AnnouncementModel
	if err := h.DB.First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el anuncio")
	}

	var req announcementDTO.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateAnnouncement.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.ApplyToModel(&announcement)
	if err := h.DB.Save(&announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el anuncio")
	}
	return helper.JsonUpdated(c, "Announcement updated", announcementDTO.NewAnnouncementResponse(&announcement))
}

// ===================== DELETE (soft) =====================
// DELETE /announcements/:id
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var announcement announcementModel.AnnouncementModel
	if err := h.DB.First(&announcement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el anuncio")
	}

	if err := h.DB.Model(&announcement).Update("is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo desactivar el anuncio")
	}
	return helper.JsonDeleted(c, "Announcement deactivated", fiber.Map{"id": announcement.ID})
}
