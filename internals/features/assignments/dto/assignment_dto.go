// file: internals/features/assignments/dto/assignment_dto.go
package dto

import (
	"strings"
	"time"

	model "semillero_backend/internals/features/assignments/model"
)

/* ===================== REQUESTS ===================== */

type CreateAssignmentRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Description *string    `json:"description" validate:"omitempty"`
	CourseID    uint       `json:"course_id" validate:"required"`
	DueDate     *time.Time `json:"due_date" validate:"omitempty"`
	MaxScore    *float64   `json:"max_score" validate:"omitempty,gte=0"`
	IsActive    *bool      `json:"is_active" validate:"omitempty"`
}

func (r CreateAssignmentRequest) ToModel() *model.AssignmentModel {
	m := &model.AssignmentModel{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		CourseID:    r.CourseID,
		DueDate:     r.DueDate,
		MaxScore:    r.MaxScore,
		IsActive:    true,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateAssignmentRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string    `json:"description" validate:"omitempty"`
	DueDate     *time.Time `json:"due_date" validate:"omitempty"`
	MaxScore    *float64   `json:"max_score" validate:"omitempty,gte=0"`
	IsActive    *bool      `json:"is_active" validate:"omitempty"`
}

// ApplyToModel aplica solo los campos presentes en el body.
func (r *UpdateAssignmentRequest) ApplyToModel(m *model.AssignmentModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		m.Description = r.Description
	}
	if r.DueDate != nil {
		m.DueDate = r.DueDate
	}
	if r.MaxScore != nil {
		m.MaxScore = r.MaxScore
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
}

/* ===================== RESPONSES ===================== */

type AssignmentResponse struct {
	ID              uint       `json:"id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description,omitempty"`
	CourseID        uint       `json:"course_id"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	MaxScore        *float64   `json:"max_score,omitempty"`
	IsActive        bool       `json:"is_active"`
	SubmissionCount int64      `json:"submission_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func NewAssignmentResponse(m *model.AssignmentModel, submissionCount int64) *AssignmentResponse {
	if m == nil {
		return nil
	}
	return &AssignmentResponse{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		CourseID:        m.CourseID,
		DueDate:         m.DueDate,
		MaxScore:        m.MaxScore,
		IsActive:        m.IsActive,
		SubmissionCount: submissionCount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
