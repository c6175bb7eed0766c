package internal

import (
	"time"

	"predial-server/internal/assets/domain"
)

type AssetCreateRequest struct {
	AssetTypeSlug string     `json:"tipoSlug" validate:"required"`
	Name          string     `json:"nome" validate:"required"`
	Tower         string     `json:"torre"`
	Floor         string     `json:"andar"`
	Place         string     `json:"local"`
	InstalledAt   *time.Time `json:"instaladoEm"`
}

type AssetUpdateRequest struct {
	Name        string     `json:"nome" validate:"required"`
	Tower       string     `json:"torre"`
	Floor       string     `json:"andar"`
	Place       string     `json:"local"`
	InstalledAt *time.Time `json:"instaladoEm"`
}

type AssetResponse struct {
	ID               string     `json:"id"`
	CondominiumID    string     `json:"condominio_id"`
	AssetTypeSlug    string     `json:"tipo_slug"`
	Name             string     `json:"nome"`
	Tower            string     `json:"torre"`
	Floor            string     `json:"andar"`
	Place            string     `json:"local"`
	InstalledAt      *time.Time `json:"instalado_em,omitempty"`
	ComplianceStatus string     `json:"status_conformidade"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type AssetCreatedResponse struct {
	AssetResponse
	PlansCreated int `json:"planos_criados"`
}

func ToAssetResponse(asset domain.Asset) AssetResponse {
	return AssetResponse{
		ID:               asset.ID.String(),
		CondominiumID:    asset.CondominiumID.String(),
		AssetTypeSlug:    asset.AssetTypeSlug,
		Name:             asset.Name,
		Tower:            asset.Location.Tower,
		Floor:            asset.Location.Floor,
		Place:            asset.Location.Place,
		InstalledAt:      asset.InstalledAt,
		ComplianceStatus: string(asset.ComplianceStatus),
		CreatedAt:        asset.CreatedAt,
		UpdatedAt:        asset.UpdatedAt,
	}
}

func ToAssetCreatedResponse(asset domain.Asset, plansCreated int) AssetCreatedResponse {
	return AssetCreatedResponse{
		AssetResponse: ToAssetResponse(asset),
		PlansCreated:  plansCreated,
	}
}
