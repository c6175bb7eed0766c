package internal

import (
	"time"

	"predial-server/internal/maintenance/domain"
)

type ChecklistItemResponse struct {
	Description string `json:"description"`
	Mandatory   bool   `json:"mandatory"`
	Done        bool   `json:"done"`
}

func toChecklistResponses(items []domain.ChecklistItem) []ChecklistItemResponse {
	result := make([]ChecklistItemResponse, len(items))
	for i, item := range items {
		result[i] = ChecklistItemResponse{
			Description: item.Description,
			Mandatory:   item.Mandatory,
			Done:        item.Done,
		}
	}
	return result
}

type PlanResponse struct {
	ID              string                  `json:"id"`
	CondominiumID   string                  `json:"condominio_id"`
	AssetID         string                  `json:"ativo_id"`
	RequirementCode string                  `json:"requisito_codigo"`
	Title           string                  `json:"titulo"`
	Description     string                  `json:"descricao,omitempty"`
	Periodicity     string                  `json:"periodicidade"`
	ResponsibleRole string                  `json:"responsavel"`
	IsLegal         bool                    `json:"is_legal"`
	Checklist       []ChecklistItemResponse `json:"checklist"`
	NBRReferences   []string                `json:"nbr_referencias"`
	LastExecutedAt  *time.Time              `json:"ultima_execucao,omitempty"`
	NextDueAt       time.Time               `json:"proximo_vencimento"`
	Classification  string                  `json:"classificacao"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
}

func ToPlanResponse(plan domain.MaintenancePlan, now time.Time) PlanResponse {
	return PlanResponse{
		ID:              plan.ID.String(),
		CondominiumID:   plan.CondominiumID.String(),
		AssetID:         plan.AssetID.String(),
		RequirementCode: plan.RequirementCode,
		Title:           plan.Title,
		Description:     plan.Description,
		Periodicity:     plan.Periodicity.String(),
		ResponsibleRole: string(plan.ResponsibleRole),
		IsLegal:         plan.IsLegal,
		Checklist:       toChecklistResponses(plan.Checklist),
		NBRReferences:   plan.NBRReferences,
		LastExecutedAt:  plan.LastExecutedAt,
		NextDueAt:       plan.NextDueAt,
		Classification:  string(plan.ClassifyAt(now)),
		CreatedAt:       plan.CreatedAt,
		UpdatedAt:       plan.UpdatedAt,
	}
}
