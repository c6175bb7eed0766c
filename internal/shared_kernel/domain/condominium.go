package domain

import (
	"time"

	"predial-server/internal/infra/utils"
)

type Condominium struct {
	ID          ID
	Name        string
	Email       string
	Description string
	IsActive    bool
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // For soft deletion
}

func (c *Condominium) IsDeleted() bool {
	return c.DeletedAt != nil
}

func (c *Condominium) SoftDelete() {
	now := time.Now()
	c.DeletedAt = &now
	c.IsActive = false
	c.UpdatedAt = now
}

func (c *Condominium) Activate() {
	c.IsActive = true
	c.UpdatedAt = time.Now()
}

func (c *Condominium) Deactivate() {
	c.IsActive = false
	c.UpdatedAt = time.Now()
}

func (c *Condominium) UpdateInfo(name, email, description string) {
	if name != "" {
		c.Name = name
	}
	if email != "" {
		c.Email = email
	}
	if description != "" {
		c.Description = description
	}
	c.UpdatedAt = time.Now()
}

func NewCondominiumBuilder() *condominiumBuilder {
	return &condominiumBuilder{}
}

type condominiumBuilder struct {
	actions []condominiumHandler
}

type condominiumHandler func(c *Condominium) error

func (b *condominiumBuilder) WithName(name string) *condominiumBuilder {
	b.actions = append(b.actions, func(c *Condominium) error {
		c.Name = name
		return nil
	})
	return b
}

func (b *condominiumBuilder) WithEmail(email string) *condominiumBuilder {
	b.actions = append(b.actions, func(c *Condominium) error {
		c.Email = email
		return nil
	})
	return b
}

func (b *condominiumBuilder) WithDescription(description string) *condominiumBuilder {
	b.actions = append(b.actions, func(c *Condominium) error {
		c.Description = description
		return nil
	})
	return b
}

func (b *condominiumBuilder) Build() (Condominium, error) {
	now := time.Now()
	result := Condominium{
		ID:        ID(utils.GenerateUUID()),
		IsActive:  true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Condominium{}, err
		}
	}

	return result, nil
}
