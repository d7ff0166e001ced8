// file: internals/features/notifications/dto/notification_dto.go
package dto

import (
	"strings"
	"time"

	"semillero_backend/internals/constants"
	model "semillero_backend/internals/features/notifications/model"
)

/* ===================== REQUESTS ===================== */

type CreateNotificationRequest struct {
	UserID              uint       `json:"user_id" validate:"required"`
	Title               string     `json:"title" validate:"required,min=1,max=255"`
	Content             *string    `json:"content" validate:"omitempty"`
	Category            *string    `json:"category" validate:"omitempty,max=50"`
	RelatedAssignmentID *uint      `json:"related_assignment_id" validate:"omitempty"`
	DueDate             *time.Time `json:"due_date" validate:"omitempty"`
}

func (r CreateNotificationRequest) ToModel() *model.NotificationModel {
	m := &model.NotificationModel{
		UserID:              r.UserID,
		Title:               strings.TrimSpace(r.Title),
		Content:             r.Content,
		Category:            constants.CategoryGeneral,
		RelatedAssignmentID: r.RelatedAssignmentID,
		DueDate:             r.DueDate,
	}
	if r.Category != nil && strings.TrimSpace(*r.Category) != "" {
		m.Category = strings.TrimSpace(*r.Category)
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateNotificationRequest struct {
	Title               *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Content             *string    `json:"content" validate:"omitempty"`
	Category            *string    `json:"category" validate:"omitempty,max=50"`
	IsRead              *bool      `json:"is_read" validate:"omitempty"`
	RelatedAssignmentID *uint      `json:"related_assignment_id" validate:"omitempty"`
	DueDate             *time.Time `json:"due_date" validate:"omitempty"`
}

func (r *UpdateNotificationRequest) ApplyToModel(m *model.NotificationModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Content != nil {
		m.Content = r.Content
	}
	if r.Category != nil && strings.TrimSpace(*r.Category) != "" {
		m.Category = strings.TrimSpace(*r.Category)
	}
	if r.IsRead != nil {
		m.IsRead = *r.IsRead
	}
	if r.RelatedAssignmentID != nil {
		m.RelatedAssignmentID = r.RelatedAssignmentID
	}
	if r.DueDate != nil {
		m.DueDate = r.DueDate
	}
}

type MarkReadRequest struct {
	IsRead bool `json:"is_read"`
}

/* ===================== RESPONSES ===================== */

type NotificationResponse struct {
	ID                  uint       `json:"id"`
	UserID              uint       `json:"user_id"`
	Title               string     `json:"title"`
	Content             *string    `json:"content,omitempty"`
	Category            string     `json:"category"`
	IsRead              bool       `json:"is_read"`
	RelatedAssignmentID *uint      `json:"related_assignment_id,omitempty"`
	DueDate             *time.Time `json:"due_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func NewNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	if m == nil {
		return nil
	}
	return &NotificationResponse{
		ID:                  m.ID,
		UserID:              m.UserID,
		Title:               m.Title,
		Content:             m.Content,
		Category:            m.Category,
		IsRead:              m.IsRead,
		RelatedAssignmentID: m.RelatedAssignmentID,
		DueDate:             m.DueDate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
