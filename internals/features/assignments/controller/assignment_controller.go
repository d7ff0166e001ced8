// file: internals/features/assignments/controller/assignment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentDTO "semillero_backend/internals/features/assignments/dto"
	assignmentModel "semillero_backend/internals/features/assignments/model"
	courseModel "semillero_backend/internals/features/courses/model"
	helper "semillero_backend/internals/helpers"
)

type AssignmentController struct{ DB *gorm.DB }

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

var validateAssignment = validator.New()

// ===================== LIST =====================
// GET /assignments?skip=&limit=&course_id=&is_active=
func (h *AssignmentController) List(c *fiber.Ctx) error {
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

	courseID, err := helper.QueryUint(c, "course_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := h.DB.Model(&assignmentModel.AssignmentModel{}).Where("is_active = ?", isActive)
	if courseID != nil && *courseID != 0 {
		tx = tx.Where("course_id = ?", *courseID)
	}

	var rows []assignmentModel.AssignmentModel
	if err := tx.Offset(p.Skip).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las tareas")
	}

	items := make([]*assignmentDTO.AssignmentResponse, 0, len(rows))
	for i := range rows {
		count, err := h.submissionCount(rows[i].ID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron calcular los contadores")
		}
		items = append(items, assignmentDTO.NewAssignmentResponse(&rows[i], count))
	}
	return helper.JsonList(c, "ok", items)
}

// ===================== GET BY ID =====================
// GET /assignments/:id
func (h *AssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var assignment assignmentModel.AssignmentModel
	if err := h.DB.First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la tarea")
	}

	count, err := h.submissionCount(assignment.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron calcular los contadores")
	}
	return helper.JsonOK(c, "ok", assignmentDTO.NewAssignmentResponse(&assignment, count))
}

// ===================== CREATE =====================
// POST /assignments
func (h *AssignmentController) Create(c *fiber.Ctx) error {
	var req assignmentDTO.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateAssignment.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var course courseModel.CourseModel
	if err := h.DB.First(&course, req.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el curso")
	}

	assignment := req.ToModel()
	if err := h.DB.Create(assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la tarea")
	}

	return helper.JsonCreated(c, "Assignment created", assignmentDTO.NewAssignmentResponse(assignment, 0))
}

// ===================== UPDATE (partial) =====================
// PUT /assignments/:id
func (h *AssignmentController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var assignment assignmentModel.AssignmentModel
	if err := h.DB.First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la tarea")
	}

	var req assignmentDTO.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateAssignment.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.ApplyToModel(&assignment)
	if err := h.DB.Save(&assignment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la tarea")
	}

	count, err := h.submissionCount(assignment.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron calcular los contadores")
	}
	return helper.JsonUpdated(c, "Assignment updated", assignmentDTO.NewAssignmentResponse(&assignment, count))
}

// ===================== DELETE (soft) =====================
// DELETE /assignments/:id
func (h *AssignmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var assignment assignmentModel.AssignmentModel
	if err := h.DB.First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la tarea")
	}

	if err := h.DB.Model(&assignment).Update("is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo desactivar la tarea")
	}
	return helper.JsonDeleted(c, "Assignment deactivated successfully", fiber.Map{"id": assignment.ID})
}

// submissionCount es un contador derivado, calculado con COUNT al momento del request.
func (h *AssignmentController) submissionCount(assignmentID uint) (int64, error) {
	var count int64
	err := h.DB.Model(&assignmentModel.SubmissionModel{}).
		Where("assignment_id = ?", assignmentID).Count(&count).Error
	return count, err
}
