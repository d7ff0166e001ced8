// file: internals/features/enrollments/controller/enrollment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseModel "semillero_backend/internals/features/courses/model"
	enrollmentDTO "semillero_backend/internals/features/enrollments/dto"
	enrollmentModel "semillero_backend/internals/features/enrollments/model"
	userModel "semillero_backend/internals/features/users/model"
	helper "semillero_backend/internals/helpers"
)

type EnrollmentController struct{ DB *gorm.DB }

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

var validateEnrollment = validator.New()

// ===================== LIST =====================
// GET /enrollments?skip=&limit=&student_id=&course_id=
func (h *EnrollmentController) List(c *fiber.Ctx) error {
	p, err := helper.ResolvePaging(c, 100, 500)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	studentID, err := helper.QueryUint(c, "student_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	courseID, err := helper.QueryUint(c, "course_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := h.DB.Model(&enrollmentModel.EnrollmentModel{})
	if studentID != nil && *studentID != 0 {
		tx = tx.Where("student_id = ?", *studentID)
	}
	if courseID != nil && *courseID != 0 {
		tx = tx.Where("course_id = ?", *courseID)
	}

	var rows []enrollmentModel.EnrollmentModel
	if err := tx.Offset(p.Skip).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las inscripciones")
	}

	items := make([]*enrollmentDTO.EnrollmentResponse, 0, len(rows))
	for i := range rows {
		items = append(items, enrollmentDTO.NewEnrollmentResponse(&rows[i]))
	}
	return helper.JsonList(c, "ok", items)
}

// ===================== GET BY ID =====================
// GET /enrollments/:id
func (h *EnrollmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var enrollment enrollmentModel.EnrollmentModel
	if err := h.DB.First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la inscripción")
	}
	return helper.JsonOK(c, "ok", enrollmentDTO.NewEnrollmentResponse(&enrollment))
}

// ===================== CREATE =====================
// POST /enrollments
func (h *EnrollmentController) Create(c *fiber.Ctx) error {
	var req enrollmentDTO.CreateEnrollmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateEnrollment.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var student userModel.UserModel
	if err := h.DB.First(&student, req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el estudiante")
	}

	var course courseModel.CourseModel
	if err := h.DB.First(&course, req.CourseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el curso")
	}

	// Par (student, course) único
	var count int64
	if err := h.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("student_id = ? AND course_id = ?", req.StudentID, req.CourseID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar la inscripción")
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Student already enrolled in this course")
	}

	enrollment := req.ToModel()
	if err := h.DB.Create(enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Student already enrolled in this course")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear la inscripción")
	}

	return helper.JsonCreated(c, "Enrollment created", enrollmentDTO.NewEnrollmentResponse(enrollment))
}

// ===================== DELETE (hard) =====================
// DELETE /enrollments/:id
func (h *EnrollmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var enrollment enrollmentModel.EnrollmentModel
	if err := h.DB.First(&enrollment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Enrollment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener la inscripción")
	}

	if err := h.DB.Delete(&enrollment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo eliminar la inscripción")
	}
	return helper.JsonDeleted(c, "Student unenrolled successfully", fiber.Map{"id": enrollment.ID})
}
