package persistence

import (
	"testing"
	"time"

	"predial-server/internal/shared_kernel/domain"
	"predial-server/internal/shared_kernel/persistence/internal"
)

func TestCondominiumModelConversion(t *testing.T) {
	deletedAt := time.Now()
	condominium := domain.Condominium{
		ID:          "cond-id",
		Name:        "Edificio Aurora",
		Email:       "sindico@aurora.com.br",
		Description: "Torre unica, 12 andares",
		IsActive:    false,
		Version:     3,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		DeletedAt:   &deletedAt,
	}

	roundTripped := internal.FromCondominium(condominium).ToDomain()

	if roundTripped.ID != condominium.ID {
		t.Errorf("expected ID %s, got %s", condominium.ID, roundTripped.ID)
	}

	if roundTripped.Name != condominium.Name {
		t.Errorf("expected Name %s, got %s", condominium.Name, roundTripped.Name)
	}

	if roundTripped.Version != condominium.Version {
		t.Errorf("expected Version %d, got %d", condominium.Version, roundTripped.Version)
	}

	if roundTripped.DeletedAt == nil {
		t.Error("expected DeletedAt to survive conversion")
	}
}

func TestUserModelConversion(t *testing.T) {
	user := domain.User{
		ID:            "user-id",
		CondominiumID: "cond-id",
		Name:          "Maria Silva",
		Email:         "maria@aurora.com.br",
		Role:          domain.UserRoleZelador,
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	roundTripped := internal.FromUser(user).ToDomain()

	if roundTripped.CondominiumID != user.CondominiumID {
		t.Errorf("expected CondominiumID %s, got %s", user.CondominiumID, roundTripped.CondominiumID)
	}

	if roundTripped.Role != domain.UserRoleZelador {
		t.Errorf("expected Role %s, got %s", domain.UserRoleZelador, roundTripped.Role)
	}
}

func TestSupplierModelConversion(t *testing.T) {
	supplier := domain.Supplier{
		ID:            "supplier-id",
		CondominiumID: "cond-id",
		Name:          "Elevadores Atlas",
		Email:         "contato@atlas.com.br",
		Phone:         "+55 11 99999-0000",
		ServiceKind:   "elevadores",
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	roundTripped := internal.FromSupplier(supplier).ToDomain()

	if roundTripped.Name != supplier.Name {
		t.Errorf("expected Name %s, got %s", supplier.Name, roundTripped.Name)
	}

	if roundTripped.ServiceKind != supplier.ServiceKind {
		t.Errorf("expected ServiceKind %s, got %s", supplier.ServiceKind, roundTripped.ServiceKind)
	}
}
