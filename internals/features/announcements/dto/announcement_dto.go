// file: internals/features/announcements/dto/announcement_dto.go
package dto

import (
	"strings"
	"time"

	model "semillero_backend/internals/features/announcements/model"
)

/* ===================== REQUESTS ===================== */

type CreateAnnouncementRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=255"`
	Content     *string    `json:"content" validate:"omitempty"`
	CreatedByID *uint      `json:"created_by_id" validate:"omitempty"`
	IsActive    *bool      `json:"is_active" validate:"omitempty"`
	StartAt     *time.Time `json:"start_at" validate:"omitempty"`
	EndAt       *time.Time `json:"end_at" validate:"omitempty"`
}

func (r CreateAnnouncementRequest) ToModel() *model.AnnouncementModel {
	m := &model.AnnouncementModel{
		Title:       strings.TrimSpace(r.Title),
		Content:     r.Content,
		CreatedByID: r.CreatedByID,
		IsActive:    true,
		StartAt:     r.StartAt,
		EndAt:       r.EndAt,
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	return m
}

/* ===================== UPDATE (partial) ===================== */

type UpdateAnnouncementRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Content     *string    `json:"content" validate:"omitempty"`
	CreatedByID *uint      `json:"created_by_id" validate:"omitempty"`
	IsActive    *bool      `json:"is_active" validate:"omitempty"`
	StartAt     *time.Time `json:"start_at" validate:"omitempty"`
	EndAt       *time.Time `json:"end_at" validate:"omitempty"`
}

// ApplyToModel aplica solo los campos presentes en el body.
func (r *UpdateAnnouncementRequest) ApplyToModel(m *model.AnnouncementModel) {
	if r.Title != nil {
		m.Title = strings.TrimSpace(*r.Title)
	}
	if r.Content != nil {
		m.Content = r.Content
	}
	if r.CreatedByID != nil {
		m.CreatedByID = r.CreatedByID
	}
	if r.IsActive != nil {
		m.IsActive = *r.IsActive
	}
	if r.StartAt != nil {
		m.StartAt = r.StartAt
	}
	if r.EndAt != nil {
		m.EndAt = r.EndAt
	}
}

/* ===================== RESPONSES ===================== */

type AnnouncementResponse struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Content     *string    `json:"content,omitempty"`
	CreatedByID *uint      `json:"created_by_id,omitempty"`
	IsActive    bool       `json:"is_active"`
	StartAt     *time.Time `json:"start_at,omitempty"`
	EndAt       *time.Time `json:"end_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewAnnouncementResponse(m *model.AnnouncementModel) *AnnouncementResponse {
	if m == nil {
		return nil
	}
	return &AnnouncementResponse{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		CreatedByID: m.CreatedByID,
		IsActive:    m.IsActive,
		StartAt:     m.StartAt,
		EndAt:       m.EndAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
