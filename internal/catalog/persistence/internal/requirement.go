package internal

import (
	"time"

	"predial-server/internal/catalog/domain"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

type ComplianceRequirement struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	AssetTypeSlug   string     `json:"asset_type_slug" gorm:"index;not null;uniqueIndex:idx_nbr_requisitos_tipo_codigo"`
	Code            string     `json:"code" gorm:"not null;uniqueIndex:idx_nbr_requisitos_tipo_codigo"`
	Title           string     `json:"title" gorm:"not null"`
	Description     string     `json:"description"`
	Periodicity     string     `json:"periodicity" gorm:"not null"`
	ResponsibleRole string     `json:"responsible_role"`
	IsLegal         bool       `json:"is_legal"`
	Checklist       Checklist  `json:"checklist" gorm:"type:text"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (ComplianceRequirement) TableName() string {
	return "nbr_requisitos"
}

func (r ComplianceRequirement) ToDomain() domain.ComplianceRequirement {
	return domain.ComplianceRequirement{
		ID:              shareddomain.ID(r.ID),
		AssetTypeSlug:   r.AssetTypeSlug,
		Code:            r.Code,
		Title:           r.Title,
		Description:     r.Description,
		Periodicity:     r.Periodicity,
		ResponsibleRole: r.ResponsibleRole,
		IsLegal:         r.IsLegal,
		Checklist:       r.Checklist,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func FromComplianceRequirement(value domain.ComplianceRequirement) ComplianceRequirement {
	return ComplianceRequirement{
		ID:              value.ID.String(),
		AssetTypeSlug:   value.AssetTypeSlug,
		Code:            value.Code,
		Title:           value.Title,
		Description:     value.Description,
		Periodicity:     value.Periodicity,
		ResponsibleRole: value.ResponsibleRole,
		IsLegal:         value.IsLegal,
		Checklist:       Checklist(value.Checklist),
		CreatedAt:       value.CreatedAt,
		UpdatedAt:       value.UpdatedAt,
	}
}
