// file: internals/features/assignments/dto/submission_dto.go
package dto

import (
	"time"

	model "semillero_backend/internals/features/assignments/model"
)

/* ===================== REQUESTS ===================== */

type CreateSubmissionRequest struct {
	AssignmentID uint     `json:"assignment_id" validate:"required"`
	StudentID    uint     `json:"student_id" validate:"required"`
	Content      *string  `json:"content" validate:"omitempty"`
	Score        *float64 `json:"score" validate:"omitempty,gte=0"`
	Feedback     *string  `json:"feedback" validate:"omitempty"`
}

func (r CreateSubmissionRequest) ToModel() *model.SubmissionModel {
	return &model.SubmissionModel{
		AssignmentID: r.AssignmentID,
		StudentID:    r.StudentID,
		Content:      r.Content,
		Score:        r.Score,
		Feedback:     r.Feedback,
	}
}

/* ===================== UPDATE (partial, para calificar) ===================== */

type UpdateSubmissionRequest struct {
	Content  *string  `json:"content" validate:"omitempty"`
	Score    *float64 `json:"score" validate:"omitempty,gte=0"`
	Feedback *string  `json:"feedback" validate:"omitempty"`
}

func (r *UpdateSubmissionRequest) ApplyToModel(m *model.SubmissionModel) {
	if r.Content != nil {
		m.Content = r.Content
	}
	if r.Score != nil {
		m.Score = r.Score
	}
	if r.Feedback != nil {
		m.Feedback = r.Feedback
	}
}

/* ===================== RESPONSES ===================== */

type SubmissionResponse struct {
	ID           uint      `json:"id"`
	AssignmentID uint      `json:"assignment_id"`
	StudentID    uint      `json:"student_id"`
	Content      *string   `json:"content,omitempty"`
	Score        *float64  `json:"score,omitempty"`
	Feedback     *string   `json:"feedback,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewSubmissionResponse(m *model.SubmissionModel) *SubmissionResponse {
	if m == nil {
		return nil
	}
	return &SubmissionResponse{
		ID:           m.ID,
		AssignmentID: m.AssignmentID,
		StudentID:    m.StudentID,
		Content:      m.Content,
		Score:        m.Score,
		Feedback:     m.Feedback,
		SubmittedAt:  m.SubmittedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
