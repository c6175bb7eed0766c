package internal

import (
	"time"

	"predial-server/internal/shared_kernel/domain"
)

type Supplier struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	CondominiumID string    `json:"condominio_id" gorm:"column:condominio_id;index;not null"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	ServiceKind   string    `json:"service_kind"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Supplier) TableName() string {
	return "fornecedores"
}

func (s Supplier) ToDomain() domain.Supplier {
	return domain.Supplier{
		ID:            domain.ID(s.ID),
		CondominiumID: domain.ID(s.CondominiumID),
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		ServiceKind:   s.ServiceKind,
		IsActive:      s.IsActive,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromSupplier(value domain.Supplier) Supplier {
	return Supplier{
		ID:            value.ID.String(),
		CondominiumID: value.CondominiumID.String(),
		Name:          value.Name,
		Email:         value.Email,
		Phone:         value.Phone,
		ServiceKind:   value.ServiceKind,
		IsActive:      value.IsActive,
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}
}
