package domain

import (
	"errors"
	"time"

	"predial-server/internal/infra/utils"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

var (
	ErrAssetNameRequired       = errors.New("asset name is required")
	ErrAssetTypeRequired       = errors.New("asset type is required")
	ErrInvalidComplianceStatus = errors.New("invalid compliance status")
)

// ComplianceStatus summarizes how an asset stands against its plans.
type ComplianceStatus string

const (
	ComplianceConforme    ComplianceStatus = "conforme"
	ComplianceAtencao     ComplianceStatus = "atencao"
	ComplianceNaoConforme ComplianceStatus = "nao_conforme"
	CompliancePendente    ComplianceStatus = "pendente"
)

func (s ComplianceStatus) IsValid() bool {
	switch s {
	case ComplianceConforme, ComplianceAtencao, ComplianceNaoConforme, CompliancePendente:
		return true
	}
	return false
}

// Location places an asset inside the condominium.
type Location struct {
	Tower string
	Floor string
	Place string
}

type Asset struct {
	ID               shareddomain.ID
	CondominiumID    shareddomain.ID
	AssetTypeSlug    string
	Name             string
	Location         Location
	InstalledAt      *time.Time
	ComplianceStatus ComplianceStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

func (a *Asset) IsDeleted() bool {
	return a.DeletedAt != nil
}

func (a *Asset) SoftDelete() {
	now := time.Now()
	a.DeletedAt = &now
	a.UpdatedAt = now
}

func (a *Asset) UpdateInfo(name string, location Location, installedAt *time.Time) {
	a.Name = name
	a.Location = location
	a.InstalledAt = installedAt
	a.UpdatedAt = time.Now()
}

func (a *Asset) SetComplianceStatus(status ComplianceStatus) error {
	if !status.IsValid() {
		return ErrInvalidComplianceStatus
	}
	a.ComplianceStatus = status
	a.UpdatedAt = time.Now()
	return nil
}

func NewAssetBuilder() *assetBuilder {
	return &assetBuilder{}
}

type assetBuilder struct {
	actions []assetHandler
}

type assetHandler func(a *Asset) error

func (b *assetBuilder) WithCondominiumID(id shareddomain.ID) *assetBuilder {
	b.actions = append(b.actions, func(a *Asset) error {
		a.CondominiumID = id
		return nil
	})
	return b
}

func (b *assetBuilder) WithAssetTypeSlug(slug string) *assetBuilder {
	b.actions = append(b.actions, func(a *Asset) error {
		if slug == "" {
			return ErrAssetTypeRequired
		}
		a.AssetTypeSlug = slug
		return nil
	})
	return b
}

func (b *assetBuilder) WithName(name string) *assetBuilder {
	b.actions = append(b.actions, func(a *Asset) error {
		if name == "" {
			return ErrAssetNameRequired
		}
		a.Name = name
		return nil
	})
	return b
}

func (b *assetBuilder) WithLocation(location Location) *assetBuilder {
	b.actions = append(b.actions, func(a *Asset) error {
		a.Location = location
		return nil
	})
	return b
}

func (b *assetBuilder) WithInstalledAt(installedAt *time.Time) *assetBuilder {
	b.actions = append(b.actions, func(a *Asset) error {
		a.InstalledAt = installedAt
		return nil
	})
	return b
}

func (b *assetBuilder) Build() (Asset, error) {
	now := time.Now()
	result := Asset{
		ID:               shareddomain.ID(utils.GenerateUUID()),
		ComplianceStatus: CompliancePendente,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return Asset{}, err
		}
	}

	if result.AssetTypeSlug == "" {
		return Asset{}, ErrAssetTypeRequired
	}
	if result.Name == "" {
		return Asset{}, ErrAssetNameRequired
	}

	return result, nil
}
