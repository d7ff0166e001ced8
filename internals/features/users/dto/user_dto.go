// file: internals/features/users/dto/user_dto.go
package dto

import (
	"time"

	model "semillero_backend/internals/features/users/model"
)

/* ===================== REQUESTS ===================== */

type ResolveRoleRequest struct {
	Email string `json:"email" validate:"required,email"`
}

/* ===================== RESPONSES ===================== */

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewUserResponse(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		ID:        m.ID,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
