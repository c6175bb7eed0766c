package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"predial-server/internal/catalog/domain"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

// Checklist is stored as a JSON text column.
type Checklist []domain.ChecklistItem

func (c Checklist) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	return json.Marshal(c)
}

func (c *Checklist) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		*c = Checklist{}
		return nil
	default:
		return errors.New("invalid type for checklist")
	}

	return json.Unmarshal(data, c)
}

type AssetType struct {
	ID                 string    `json:"id" gorm:"primaryKey"`
	Slug               string    `json:"slug" gorm:"uniqueIndex;not null"`
	Name               string    `json:"name" gorm:"not null"`
	MaintenanceSystem  string    `json:"maintenance_system"`
	Criticality        string    `json:"criticality"`
	RequiresCompliance bool      `json:"requires_compliance"`
	DefaultChecklist   Checklist `json:"default_checklist" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (AssetType) TableName() string {
	return "ativo_tipos"
}

func (t AssetType) ToDomain() domain.AssetType {
	return domain.AssetType{
		ID:                 shareddomain.ID(t.ID),
		Slug:               t.Slug,
		Name:               t.Name,
		MaintenanceSystem:  t.MaintenanceSystem,
		Criticality:        domain.Criticality(t.Criticality),
		RequiresCompliance: t.RequiresCompliance,
		DefaultChecklist:   t.DefaultChecklist,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func FromAssetType(value domain.AssetType) AssetType {
	return AssetType{
		ID:                 value.ID.String(),
		Slug:               value.Slug,
		Name:               value.Name,
		MaintenanceSystem:  value.MaintenanceSystem,
		Criticality:        string(value.Criticality),
		RequiresCompliance: value.RequiresCompliance,
		DefaultChecklist:   Checklist(value.DefaultChecklist),
		CreatedAt:          value.CreatedAt,
		UpdatedAt:          value.UpdatedAt,
	}
}
