package domain

import (
	"time"

	"predial-server/internal/infra/utils"
)

type Supplier struct {
	ID            ID
	CondominiumID ID
	Name          string
	Email         string
	Phone         string
	ServiceKind   string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewSupplierBuilder() *supplierBuilder {
	return &supplierBuilder{}
}

type supplierBuilder struct {
	actions []supplierHandler
}

type supplierHandler func(s *Supplier) error

func (b *supplierBuilder) WithCondominiumID(id ID) *supplierBuilder {
	b.actions = append(b.actions, func(s *Supplier) error {
		s.CondominiumID = id
		return nil
	})
	return b
}

func (b *supplierBuilder) WithName(name string) *supplierBuilder {
	b.actions = append(b.actions, func(s *Supplier) error {
		s.Name = name
		return nil
	})
	return b
}

func (b *supplierBuilder) WithEmail(email string) *supplierBuilder {
	b.actions = append(b.actions, func(s *Supplier) error {
		s.Email = email
		return nil
	})
	return b
}

func (b *supplierBuilder) WithPhone(phone string) *supplierBuilder {
	b.actions = append(b.actions, func(s *Supplier) error {
		s.Phone = phone
		return nil
	})
	return b
}

func (b *supplierBuilder) WithServiceKind(kind string) *supplierBuilder {
	b.actions = append(b.actions, func(s *Supplier) error {
		s.ServiceKind = kind
		return nil
	})
	return b
}

func (b *supplierBuilder) Build() (Supplier, error) {
	now := time.Now()
	result := Supplier{
		ID:        ID(utils.GenerateUUID()),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Supplier{}, err
		}
	}

	return result, nil
}
