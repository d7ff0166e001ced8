// file: internals/features/enrollments/dto/enrollment_dto.go
package dto

import (
	"time"

	model "semillero_backend/internals/features/enrollments/model"
)

/* ===================== REQUESTS ===================== */

type CreateEnrollmentRequest struct {
	StudentID uint `json:"student_id" validate:"required"`
	CourseID  uint `json:"course_id" validate:"required"`
}

func (r CreateEnrollmentRequest) ToModel() *model.EnrollmentModel {
	return &model.EnrollmentModel{
		StudentID: r.StudentID,
		CourseID:  r.CourseID,
	}
}

/* ===================== RESPONSES ===================== */

type EnrollmentResponse struct {
	ID         uint      `json:"id"`
	StudentID  uint      `json:"student_id"`
	CourseID   uint      `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

func NewEnrollmentResponse(m *model.EnrollmentModel) *EnrollmentResponse {
	if m == nil {
		return nil
	}
	return &EnrollmentResponse{
		ID:         m.ID,
		StudentID:  m.StudentID,
		CourseID:   m.CourseID,
		EnrolledAt: m.EnrolledAt,
	}
}
