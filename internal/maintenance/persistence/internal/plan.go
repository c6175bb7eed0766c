package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"predial-server/internal/maintenance/domain"
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

// StringList is stored as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		*l = StringList{}
		return nil
	default:
		return errors.New("invalid type for string list")
	}

	return json.Unmarshal(data, l)
}

type MaintenancePlan struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	CondominiumID   string     `json:"condominio_id" gorm:"column:condominio_id;index;not null"`
	AssetID         string     `json:"ativo_id" gorm:"column:ativo_id;not null;uniqueIndex:idx_plano_ativo_requisito"`
	RequirementCode string     `json:"requisito_codigo" gorm:"column:requisito_codigo;not null;uniqueIndex:idx_plano_ativo_requisito"`
	Title           string     `json:"title" gorm:"not null"`
	Description     string     `json:"description"`
	Periodicity     string     `json:"periodicity" gorm:"not null"`
	ResponsibleRole string     `json:"responsible_role"`
	IsLegal         bool       `json:"is_legal"`
	Checklist       Checklist  `json:"checklist" gorm:"type:text"`
	NBRReferences   StringList `json:"nbr_references" gorm:"column:nbr_references;type:text"`
	LastExecutedAt  *time.Time `json:"last_executed_at"`
	NextDueAt       time.Time  `json:"next_due_at" gorm:"index;not null"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (MaintenancePlan) TableName() string {
	return "planos_manutencao"
}

func (p MaintenancePlan) ToDomain() (domain.MaintenancePlan, error) {
	periodicity, err := domain.ParsePeriodicity(p.Periodicity)
	if err != nil {
		return domain.MaintenancePlan{}, err
	}

	return domain.MaintenancePlan{
		ID:              shareddomain.ID(p.ID),
		CondominiumID:   shareddomain.ID(p.CondominiumID),
		AssetID:         shareddomain.ID(p.AssetID),
		RequirementCode: p.RequirementCode,
		Title:           p.Title,
		Description:     p.Description,
		Periodicity:     periodicity,
		ResponsibleRole: domain.ResponsibleRole(p.ResponsibleRole),
		IsLegal:         p.IsLegal,
		Checklist:       p.Checklist,
		NBRReferences:   p.NBRReferences,
		LastExecutedAt:  p.LastExecutedAt,
		NextDueAt:       p.NextDueAt,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}, nil
}

func FromMaintenancePlan(value domain.MaintenancePlan) MaintenancePlan {
	return MaintenancePlan{
		ID:              value.ID.String(),
		CondominiumID:   value.CondominiumID.String(),
		AssetID:         value.AssetID.String(),
		RequirementCode: value.RequirementCode,
		Title:           value.Title,
		Description:     value.Description,
		Periodicity:     value.Periodicity.String(),
		ResponsibleRole: string(value.ResponsibleRole),
		IsLegal:         value.IsLegal,
		Checklist:       Checklist(value.Checklist),
		NBRReferences:   StringList(value.NBRReferences),
		LastExecutedAt:  value.LastExecutedAt,
		NextDueAt:       value.NextDueAt,
		CreatedAt:       value.CreatedAt,
		UpdatedAt:       value.UpdatedAt,
	}
}
