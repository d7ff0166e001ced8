// file: internals/features/assignments/controller/submission_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentDTO "semillero_backend/internals/features/assignments/dto"
	assignmentModel "semillero_backend/internals/features/assignments/model"
	userModel "semillero_backend/internals/features/users/model"
	helper "semillero_backend/internals/helpers"
)

type SubmissionController struct{ DB *gorm.DB }

func NewSubmissionController(db *gorm.DB) *SubmissionController {
	return &SubmissionController{DB: db}
}

// ===================== LIST =====================
// GET /assignments/submissions?skip=&limit=&assignment_id=&student_id=
func (h *SubmissionController) List(c *fiber.Ctx) error {
	p, err := helper.ResolvePaging(c, 100, 500)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Los filtros llegan a veces como cadena vacía desde el frontend;
	// vacío cuenta como ausente, no-entero es 422.
	assignmentID, err := queryIntFilter(c, "assignment_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "assignment_id debe ser un entero válido")
	}
	studentID, err := queryIntFilter(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "student_id debe ser un entero válido")
	}

	tx := h.DB.Model(&assignmentModel.SubmissionModel{})
	if assignmentID != nil {
		tx = tx.Where("assignment_id = ?", *assignmentID)
	}
	if studentID != nil {
		tx = tx.Where("student_id = ?", *studentID)
	}

	var rows []assignmentModel.SubmissionModel
	if err := tx.Offset(p.Skip).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las entregas")
	}

	items := make([]*assignmentDTO.SubmissionResponse, 0, len(rows))
	for i := range rows {
		items = append(items, assignmentDTO.NewSubmissionResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", items)
}

func queryIntFilter(c *fiber.Ctx, name string) (*uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	u := uint(v)
	return &u, nil
}

// ===================== GET BY ID =====================
// GET /assignments/submissions/:id
func (h *SubmissionController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var submission assignmentModel.SubmissionModel
	if err := h.DB.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la entrega")
	}
	return helper.JsonOK(c, "ok", assignmentDTO.NewSubmissionResponse(&submission))
}

// ===================== CREATE =====================
// POST /assignments/submissions
func (h *SubmissionController) Create(c *fiber.Ctx) error {
	var req assignmentDTO.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateAssignment.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var assignment assignmentModel.AssignmentModel
	if err := h.DB.First(&assignment, req.AssignmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar la tarea")
	}

	var student userModel.UserModel
	if err := h.DB.First(&student, req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el estudiante")
	}

	// Par (assignment, student) único
	var count int64
	if err := h.DB.Model(&assignmentModel.SubmissionModel{}).
		Where("assignment_id = ? AND student_id = ?", req.AssignmentID, req.StudentID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar la entrega")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student already submitted this assignment")
	}

	submission := req.ToModel()
	if err := h.DB.Create(submission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student already submitted this assignment")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la entrega")
	}

	return helper.JsonCreated(c, "Submission created", assignmentDTO.NewSubmissionResponse(submission))
}

// ===================== UPDATE (partial, calificación y feedback) =====================
// PUT /assignments/submissions/:id
func (h *SubmissionController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var submission assignmentModel.SubmissionModel
	if err := h.DB.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la entrega")
	}

	var req assignmentDTO.UpdateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateAssignment.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.ApplyToModel(&submission)
	if err := h.DB.Save(&submission).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la entrega")
	}
	return helper.JsonUpdated(c, "Submission updated", assignmentDTO.NewSubmissionResponse(&submission))
}

// ===================== DELETE (hard) =====================
// DELETE /assignments/submissions/:id
func (h *SubmissionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var submission assignmentModel.SubmissionModel
	if err := h.DB.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Submission not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la entrega")
	}

	if err := h.DB.Delete(&submission).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar la entrega")
	}
	return helper.JsonDeleted(c, "Submission deleted successfully", fiber.Map{"id": submission.ID})
}
