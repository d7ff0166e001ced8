// file: internals/features/courses/controller/course_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentModel "semillero_backend/internals/features/assignments/model"
	courseDTO "semillero_backend/internals/features/courses/dto"
	courseModel "semillero_backend/internals/features/courses/model"
	enrollmentModel "semillero_backend/internals/features/enrollments/model"
	userModel "semillero_backend/internals/features/users/model"
	helper "semillero_backend/internals/helpers"
)

type CourseController struct{ DB *gorm.DB }

func NewCourseController(db *gorm.DB) *CourseController { return &CourseController{DB: db} }

var validateCourse = validator.New()

// ===================== LIST =====================
// GET /courses?skip=&limit=&teacher_id=&is_active=
func (h *CourseController) List(c *fiber.Ctx) error {
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

	teacherID, err := helper.QueryUint(c, "teacher_id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := h.DB.Model(&courseModel.CourseModel{}).Where("is_active = ?", isActive)
	if teacherID != nil && *teacherID != 0 {
		tx = tx.Where("teacher_id = ?", *teacherID)
	}

	var rows []courseModel.CourseModel
	if err := tx.Offset(p.Skip).Limit(p.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los cursos")
	}

	items := make([]*courseDTO.CourseResponse, 0, len(rows))
	for i := range rows {
		enrollments, assignments, err := h.counts(rows[i].ID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron calcular los contadores")
		}
		items = append(items, courseDTO.NewCourseResponse(&rows[i], enrollments, assignments))
	}
	return helper.JsonList(c, "ok", items)
}

// ===================== GET BY ID =====================
// GET /courses/:id
func (h *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var course courseModel.CourseModel
	if err := h.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el curso")
	}

	enrollments, assignments, err := h.counts(course.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron calcular los contadores")
	}
	return helper.JsonOK(c, "ok", courseDTO.NewCourseResponse(&course, enrollments, assignments))
}

// ===================== CREATE =====================
// POST /courses
func (h *CourseController) Create(c *fiber.Ctx) error {
	var req courseDTO.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateCourse.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// El profesor referenciado debe existir
	var teacher userModel.UserModel
	if err := h.DB.First(&teacher, req.TeacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el profesor")
	}

	course := req.ToModel()

	if course.GoogleCourseID != nil {
		var count int64
		if err := h.DB.Model(&courseModel.CourseModel{}).
			Where("google_course_id = ?", *course.GoogleCourseID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar google_course_id")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Google course ID already exists")
		}
	}

	if err := h.DB.Create(course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Google course ID already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo crear el curso")
	}

	return helper.JsonCreated(c, "Course created", courseDTO.NewCourseResponse(course, 0, 0))
}

// ===================== UPDATE (partial) =====================
// PUT /courses/:id
func (h *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var course courseModel.CourseModel
	if err := h.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el curso")
	}

	var req courseDTO.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body inválido")
	}
	if err := validateCourse.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	// Si cambia google_course_id, no puede chocar con otro curso
	if req.GoogleCourseID != nil {
		var count int64
		if err := h.DB.Model(&courseModel.CourseModel{}).
			Where("google_course_id = ? AND id <> ?", *req.GoogleCourseID, course.ID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar google_course_id")
		}
		if count > 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Google course ID already exists")
		}
	}

	req.ApplyToModel(&course)
	if err := h.DB.Save(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Google course ID already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el curso")
	}

	enrollments, assignments, err := h.counts(course.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron calcular los contadores")
	}
	return helper.JsonUpdated(c, "Course updated", courseDTO.NewCourseResponse(&course, enrollments, assignments))
}

// ===================== DELETE (soft) =====================
// DELETE /courses/:id
func (h *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var course courseModel.CourseModel
	if err := h.DB.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo obtener el curso")
	}

	if err := h.DB.Model(&course).Update("is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo desactivar el curso")
	}
	return helper.JsonDeleted(c, "Course deactivated successfully", fiber.Map{"id": course.ID})
}

// counts calcula los contadores derivados con consultas COUNT (no se almacenan).
func (h *CourseController) counts(courseID uint) (enrollments, assignments int64, err error) {
	if err = h.DB.Model(&enrollmentModel.EnrollmentModel{}).
		Where("course_id = ?", courseID).Count(&enrollments).Error; err != nil {
		return
	}
	err = h.DB.Model(&assignmentModel.AssignmentModel{}).
		Where("course_id = ?", courseID).Count(&assignments).Error
	return
}
