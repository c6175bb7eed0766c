package internal

import (
	"time"

	"predial-server/internal/shared_kernel/domain"
)

type User struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	CondominiumID string    `json:"condominio_id" gorm:"column:condominio_id;index;not null;uniqueIndex:idx_usuarios_condominio_email"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"not null;uniqueIndex:idx_usuarios_condominio_email"`
	Role          string    `json:"role" gorm:"not null"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "usuarios"
}

func (u User) ToDomain() domain.User {
	return domain.User{
		ID:            domain.ID(u.ID),
		CondominiumID: domain.ID(u.CondominiumID),
		Name:          u.Name,
		Email:         u.Email,
		Role:          domain.UserRole(u.Role),
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func FromUser(value domain.User) User {
	return User{
		ID:            value.ID.String(),
		CondominiumID: value.CondominiumID.String(),
		Name:          value.Name,
		Email:         value.Email,
		Role:          string(value.Role),
		IsActive:      value.IsActive,
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}
}
