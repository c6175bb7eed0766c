package internal

import (
	"time"

	"predial-server/internal/shared_kernel/domain"
)

type UserCreateRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=sindico zelador morador admin"`
}

type UserResponse struct {
	ID            string    `json:"id"`
	CondominiumID string    `json:"condominio_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToUserResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		CondominiumID: user.CondominiumID.String(),
		Name:          user.Name,
		Email:         user.Email,
		Role:          string(user.Role),
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt,
	}
}
