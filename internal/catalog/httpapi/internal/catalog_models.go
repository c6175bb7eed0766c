package internal

import (
	"predial-server/internal/catalog/domain"
)

type ChecklistItemResponse struct {
	Description string `json:"description"`
	Mandatory   bool   `json:"mandatory"`
}

type AssetTypeResponse struct {
	ID                 string                  `json:"id"`
	Slug               string                  `json:"slug"`
	Name               string                  `json:"name"`
	MaintenanceSystem  string                  `json:"maintenance_system"`
	Criticality        string                  `json:"criticality"`
	RequiresCompliance bool                    `json:"requires_compliance"`
	DefaultChecklist   []ChecklistItemResponse `json:"default_checklist"`
}

type RequirementResponse struct {
	ID              string                  `json:"id"`
	AssetTypeSlug   string                  `json:"asset_type_slug"`
	Code            string                  `json:"code"`
	Title           string                  `json:"title"`
	Description     string                  `json:"description"`
	Periodicity     string                  `json:"periodicity"`
	ResponsibleRole string                  `json:"responsible_role"`
	IsLegal         bool                    `json:"is_legal"`
	Checklist       []ChecklistItemResponse `json:"checklist"`
}

func toChecklistResponses(items []domain.ChecklistItem) []ChecklistItemResponse {
	result := make([]ChecklistItemResponse, len(items))
	for i, item := range items {
		result[i] = ChecklistItemResponse{
			Description: item.Description,
			Mandatory:   item.Mandatory,
		}
	}
	return result
}

func ToAssetTypeResponse(assetType domain.AssetType) AssetTypeResponse {
	return AssetTypeResponse{
		ID:                 assetType.ID.String(),
		Slug:               assetType.Slug,
		Name:               assetType.Name,
		MaintenanceSystem:  assetType.MaintenanceSystem,
		Criticality:        string(assetType.Criticality),
		RequiresCompliance: assetType.RequiresCompliance,
		DefaultChecklist:   toChecklistResponses(assetType.DefaultChecklist),
	}
}

func ToRequirementResponse(requirement domain.ComplianceRequirement) RequirementResponse {
	return RequirementResponse{
		ID:              requirement.ID.String(),
		AssetTypeSlug:   requirement.AssetTypeSlug,
		Code:            requirement.Code,
		Title:           requirement.Title,
		Description:     requirement.Description,
		Periodicity:     requirement.Periodicity,
		ResponsibleRole: requirement.ResponsibleRole,
		IsLegal:         requirement.IsLegal,
		Checklist:       toChecklistResponses(requirement.Checklist),
	}
}
