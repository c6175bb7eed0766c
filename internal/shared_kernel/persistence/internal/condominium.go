package internal

import (
	"time"

	"predial-server/internal/shared_kernel/domain"
)

type Condominium struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	Version     int        `json:"version"`
	Name        string     `json:"name" gorm:"uniqueIndex;not null"`
	Email       string     `json:"email" gorm:"not null"`
	Description string     `json:"description"`
	IsActive    bool       `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

func (Condominium) TableName() string {
	return "condominios"
}

func (c Condominium) ToDomain() domain.Condominium {
	return domain.Condominium{
		ID:          domain.ID(c.ID),
		Name:        c.Name,
		Email:       c.Email,
		Description: c.Description,
		IsActive:    c.IsActive,
		Version:     c.Version,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		DeletedAt:   c.DeletedAt,
	}
}

func FromCondominium(value domain.Condominium) Condominium {
	return Condominium{
		ID:          value.ID.String(),
		Version:     value.Version,
		Name:        value.Name,
		Email:       value.Email,
		Description: value.Description,
		IsActive:    value.IsActive,
		CreatedAt:   value.CreatedAt,
		UpdatedAt:   value.UpdatedAt,
		DeletedAt:   value.DeletedAt,
	}
}
