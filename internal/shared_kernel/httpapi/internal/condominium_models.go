package internal

import (
	"time"

	"predial-server/internal/shared_kernel/domain"
)

// Request models
type CondominiumCreateRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Description string `json:"description" validate:"max=500"`
}

type CondominiumUpdateRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Version     int    `json:"version,omitempty"`
}

// Response models
type CondominiumResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Description string     `json:"description"`
	IsActive    bool       `json:"is_active"`
	Version     int        `json:"version"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

func ToCondominiumResponse(condominium domain.Condominium) CondominiumResponse {
	return CondominiumResponse{
		ID:          condominium.ID.String(),
		Name:        condominium.Name,
		Email:       condominium.Email,
		Description: condominium.Description,
		IsActive:    condominium.IsActive,
		Version:     condominium.Version,
		CreatedAt:   condominium.CreatedAt,
		UpdatedAt:   condominium.UpdatedAt,
		DeletedAt:   condominium.DeletedAt,
	}
}
