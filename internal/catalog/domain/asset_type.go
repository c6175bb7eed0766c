package domain

import (
	"time"

	shareddomain "predial-server/internal/shared_kernel/domain"
)

type Criticality string

const (
	CriticalityLow    Criticality = "baixa"
	CriticalityMedium Criticality = "media"
	CriticalityHigh   Criticality = "alta"
)

// ChecklistItem is one step of a maintenance checklist.
type ChecklistItem struct {
	Description string `json:"description"`
	Mandatory   bool   `json:"mandatory"`
}

// AssetType is a platform-owned catalog entry. Condominium assets reference
// it by slug; requires_compliance decides whether preventive plans are
// generated when an asset of this type is registered.
type AssetType struct {
	ID                 shareddomain.ID
	Slug               string
	Name               string
	MaintenanceSystem  string
	Criticality        Criticality
	RequiresCompliance bool
	DefaultChecklist   []ChecklistItem
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
