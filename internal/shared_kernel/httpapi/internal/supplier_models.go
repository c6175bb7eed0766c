package internal

import (
	"time"

	"predial-server/internal/shared_kernel/domain"
)

type SupplierCreateRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=30"`
	ServiceKind string `json:"service_kind" validate:"max=60"`
}

type SupplierResponse struct {
	ID            string    `json:"id"`
	CondominiumID string    `json:"condominio_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ServiceKind   string    `json:"service_kind"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToSupplierResponse(supplier domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            supplier.ID.String(),
		CondominiumID: supplier.CondominiumID.String(),
		Name:          supplier.Name,
		Email:         supplier.Email,
		Phone:         supplier.Phone,
		ServiceKind:   supplier.ServiceKind,
		IsActive:      supplier.IsActive,
		CreatedAt:     supplier.CreatedAt,
	}
}
