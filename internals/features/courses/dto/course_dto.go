// file: internals/features/courses/dto/course_dto.go
package dto

import (
	"strings"
	"time"

	model "semillero_backend/internals/features/courses/model"
)

/* ===================== REQUESTS ===================== */

type CreateCourseRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=255"`
	Description    *string `json:"description" validate:"omitempty"`
	GoogleCourseID *string `json:"google_course_id" validate:"omitempty,max=255"`
	TeacherID      uint    `json:"teacher_id" validate:"required"`
	IsActive       *bool   `json:"is_active" validate:"omitempty"`
}

func (r CreateCourseRequest) ToModel() *model.CourseModel {
	m := &model.CourseModel{
		Name:           strings.TrimSpace(r.Name),
		Description:    r.Description,
		GoogleCourseID: normalizeOptional(r.GoogleCourseID),
		TeacherID:      r.TeacherID,
		IsActive:       true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateCourseRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description    *string `json:"description" validate:"omitempty"`
	GoogleCourseID *string `json:"google_course_id" validate:"omitempty,max=255"`
	TeacherID      *uint   `json:"teacher_id" validate:"omitempty"`
	IsActive       *bool   `json:"is_active" validate:"omitempty"`
}

// ApplyToModel aplica solo los campos presentes en el body.
func (r *UpdateCourseRequest) ApplyToModel(m *model.CourseModel) {
	if r.Name != nil {
		m.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.GoogleCourseID != nil {
		m.GoogleCourseID = normalizeOptional(r.GoogleCourseID)
	}
	if r.TeacherID != nil {
		m.TeacherID = *r.TeacherID
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ===================== RESPONSES ===================== */

type CourseResponse struct {
	ID              uint      `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	GoogleCourseID  *string   `json:"google_course_id,omitempty"`
	TeacherID       uint      `json:"teacher_id"`
	IsActive        bool      `json:"is_active"`
	EnrollmentCount int64     `json:"enrollment_count"`
	AssignmentCount int64     `json:"assignment_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewCourseResponse(m *model.CourseModel, enrollmentCount, assignmentCount int64) *CourseResponse {
	if m == nil {
		return nil
	}
	return &CourseResponse{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		GoogleCourseID:  m.GoogleCourseID,
		TeacherID:       m.TeacherID,
		IsActive:        m.IsActive,
		EnrollmentCount: enrollmentCount,
		AssignmentCount: assignmentCount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
