// file: internals/features/notifications/controller/alert_controller.go
package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"semillero_backend/internals/constants"
	assignmentModel "semillero_backend/internals/features/assignments/model"
	enrollmentModel "semillero_backend/internals/features/enrollments/model"
	notificationDTO "semillero_backend/internals/features/notifications/dto"
	userModel "semillero_backend/internals/features/users/model"
	helper "semillero_backend/internals/helpers"
)

// Las alertas son proyecciones de solo lectura sobre (inscripciones × tareas):
// nunca se persisten y su id siempre se reporta como 0.

// ===================== UPCOMING =====================
// GET /notifications/alerts/upcoming?user_id=&within_hours=
func (h *NotificationController) AlertsUpcoming(c *fiber.Ctx) error {
	userID, err := helper.QueryUint(c, "user_id")
	if err != nil || userID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id debe ser un entero válido")
	}

	withinHours := 48
	if v, err := helper.QueryUint(c, "within_hours"); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	} else if v != nil {
		withinHours = int(*v)
	}

	if err := h.requireUser(*userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el usuario")
	}

	now := time.Now().UTC()
	until := now.Add(time.Duration(withinHours) * time.Hour)

	assignments, err := h.enrolledAssignments(*userID, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("due_date >= ? AND due_date <= ?", now, until)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron calcular las alertas")
	}

	items := make([]*notificationDTO.NotificationResponse, 0, len(assignments))
	for i := range assignments {
		items = append(items, h.alertFor(&assignments[i], *userID,
			fmt.Sprintf("Entrega próxima: %s", assignments[i].Title),
			constants.CategoryDeadline, now))
	}
	return helper.JsonList(c, "ok", items)
}

// ===================== OVERDUE =====================
// GET /notifications/alerts/overdue?user_id=
func (h *NotificationController) AlertsOverdue(c *fiber.Ctx) error {
	userID, err := helper.QueryUint(c, "user_id")
	if err != nil || userID == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "user_id debe ser un entero válido")
	}

	if err := h.requireUser(*userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo validar el usuario")
	}

	now := time.Now().UTC()

	assignments, err := h.enrolledAssignments(*userID, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("due_date < ?", now)
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudieron calcular las alertas")
	}

	items := make([]*notificationDTO.NotificationResponse, 0, len(assignments))
	for i := range assignments {
		items = append(items, h.alertFor(&assignments[i], *userID,
			fmt.Sprintf("Entrega vencida: %s", assignments[i].Title),
			constants.CategoryDeadlineOverdue, now))
	}
	return helper.JsonList(c, "ok", items)
}

func (h *NotificationController) requireUser(userID uint) error {
	var user userModel.UserModel
	return h.DB.First(&user, userID).Error
}

// enrolledAssignments junta las tareas activas con due_date de los cursos
// donde el usuario está inscrito, más la ventana que aporte el caller.
func (h *NotificationController) enrolledAssignments(userID uint, window func(*gorm.DB) *gorm.DB) ([]assignmentModel.AssignmentModel, error) {
	var enrollments []enrollmentModel.EnrollmentModel
	if err := h.DB.Where("student_id = ?", userID).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	if len(enrollments) == 0 {
		return nil, nil
	}

	courseIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}

	tx := h.DB.
		Where("course_id IN ?", courseIDs).
		Where("is_active = ?", true).
		Where("due_date IS NOT NULL")
	tx = window(tx)

	var assignments []assignmentModel.AssignmentModel
	if err := tx.Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (h *NotificationController) alertFor(a *assignmentModel.AssignmentModel, userID uint, title, category string, now time.Time) *notificationDTO.NotificationResponse {
	content := ""
	if a.Description != nil {
		content = helper.TruncateRunes(*a.Description, 500)
	}
	assignmentID := a.ID
	return &notificationDTO.NotificationResponse{
		ID:                  0,
		UserID:              userID,
		Title:               title,
		Content:             &content,
		Category:            category,
		IsRead:              false,
		RelatedAssignmentID: &assignmentID,
		DueDate:             a.DueDate,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
