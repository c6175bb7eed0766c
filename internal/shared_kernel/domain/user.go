package domain

import (
	"errors"
	"time"

	"predial-server/internal/infra/utils"
)

type UserRole string

const (
	UserRoleSindico UserRole = "sindico"
	UserRoleZelador UserRole = "zelador"
	UserRoleMorador UserRole = "morador"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleSindico, UserRoleZelador, UserRoleMorador, UserRoleAdmin:
		return true
	}
	return false
}

var ErrInvalidUserRole = errors.New("invalid user role")

type User struct {
	ID            ID
	CondominiumID ID
	Name          string
	Email         string
	Role          UserRole
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewUserBuilder() *userBuilder {
	return &userBuilder{}
}

type userBuilder struct {
	actions []userHandler
}

type userHandler func(u *User) error

func (b *userBuilder) WithCondominiumID(id ID) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.CondominiumID = id
		return nil
	})
	return b
}

func (b *userBuilder) WithName(name string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.Name = name
		return nil
	})
	return b
}

func (b *userBuilder) WithEmail(email string) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		u.Email = email
		return nil
	})
	return b
}

func (b *userBuilder) WithRole(role UserRole) *userBuilder {
	b.actions = append(b.actions, func(u *User) error {
		if !role.IsValid() {
			return ErrInvalidUserRole
		}
		u.Role = role
		return nil
	})
	return b
}

func (b *userBuilder) Build() (User, error) {
	now := time.Now()
	result := User{
		ID:        ID(utils.GenerateUUID()),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return User{}, err
		}
	}

	return result, nil
}
