package internal

import (
	"time"

	"predial-server/internal/assets/domain"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

type Asset struct {
	ID               string     `json:"id" gorm:"primaryKey"`
	CondominiumID    string     `json:"condominio_id" gorm:"column:condominio_id;index;not null"`
	AssetTypeSlug    string     `json:"tipo_slug" gorm:"column:tipo_slug;index;not null"`
	Name             string     `json:"name" gorm:"not null"`
	LocationTower    string     `json:"location_tower"`
	LocationFloor    string     `json:"location_floor"`
	LocationPlace    string     `json:"location_place"`
	InstalledAt      *time.Time `json:"installed_at"`
	ComplianceStatus string     `json:"compliance_status" gorm:"default:pendente"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at" gorm:"index"`
}

func (Asset) TableName() string {
	return "ativos"
}

func (a Asset) ToDomain() domain.Asset {
	return domain.Asset{
		ID:            shareddomain.ID(a.ID),
		CondominiumID: shareddomain.ID(a.CondominiumID),
		AssetTypeSlug: a.AssetTypeSlug,
		Name:          a.Name,
		Location: domain.Location{
			Tower: a.LocationTower,
			Floor: a.LocationFloor,
			Place: a.LocationPlace,
		},
		InstalledAt:      a.InstalledAt,
		ComplianceStatus: domain.ComplianceStatus(a.ComplianceStatus),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
		DeletedAt:        a.DeletedAt,
	}
}

func FromAsset(value domain.Asset) Asset {
	return Asset{
		ID:               value.ID.String(),
		CondominiumID:    value.CondominiumID.String(),
		AssetTypeSlug:    value.AssetTypeSlug,
		Name:             value.Name,
		LocationTower:    value.Location.Tower,
		LocationFloor:    value.Location.Floor,
		LocationPlace:    value.Location.Place,
		InstalledAt:      value.InstalledAt,
		ComplianceStatus: string(value.ComplianceStatus),
		CreatedAt:        value.CreatedAt,
		UpdatedAt:        value.UpdatedAt,
		DeletedAt:        value.DeletedAt,
	}
}
