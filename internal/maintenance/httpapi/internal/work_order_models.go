package internal

import (
	"time"

	"github.com/shopspring/decimal"

	"predial-server/internal/maintenance/domain"
)

type ChecklistItemRequest struct {
	Description string `json:"description" validate:"required"`
	Mandatory   bool   `json:"mandatory"`
}

type WorkOrderCreateRequest struct {
	AssetID           string                 `json:"ativoId" validate:"required"`
	Title             string                 `json:"titulo" validate:"required"`
	Description       string                 `json:"descricao"`
	Type              string                 `json:"tipoOS" validate:"required,oneof=preventiva corretiva preditiva emergencial"`
	Priority          string                 `json:"prioridade" validate:"required,oneof=baixa media alta urgente"`
	ExecutorKind      string                 `json:"tipoExecutor" validate:"required,oneof=interno externo"`
	ExecutorName      string                 `json:"executorNome"`
	ExecutorContact   string                 `json:"executorContato"`
	ResponsibleUserID *string                `json:"responsavelId"`
	ScheduledAt       *time.Time             `json:"dataPrevista"`
	PlanID            *string                `json:"planoId"`
	NBRReferences     []string               `json:"nbrReferencias"`
	ChecklistItems    []ChecklistItemRequest `json:"checklistItems"`
	Cost              *decimal.Decimal       `json:"custo"`
}

func (r WorkOrderCreateRequest) Checklist() []domain.ChecklistItem {
	result := make([]domain.ChecklistItem, len(r.ChecklistItems))
	for i, item := range r.ChecklistItems {
		result[i] = domain.ChecklistItem{
			Description: item.Description,
			Mandatory:   item.Mandatory,
		}
	}
	return result
}

type WorkOrderTransitionRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"observacao"`
}

type WorkOrderResponse struct {
	ID                string                  `json:"id"`
	CondominiumID     string                  `json:"condominio_id"`
	Number            string                  `json:"numero_os"`
	AssetID           string                  `json:"ativo_id"`
	PlanID            *string                 `json:"plano_id,omitempty"`
	Title             string                  `json:"titulo"`
	Description       string                  `json:"descricao,omitempty"`
	Type              string                  `json:"tipo"`
	Priority          string                  `json:"prioridade"`
	Status            string                  `json:"status"`
	ExecutorKind      string                  `json:"tipo_executor"`
	ExecutorName      string                  `json:"executor_nome,omitempty"`
	ExecutorContact   string                  `json:"executor_contato,omitempty"`
	ResponsibleUserID *string                 `json:"responsavel_id,omitempty"`
	NBRReferences     []string                `json:"nbr_referencias"`
	Checklist         []ChecklistItemResponse `json:"checklist"`
	OpenedAt          time.Time               `json:"aberta_em"`
	ScheduledAt       *time.Time              `json:"data_prevista,omitempty"`
	CompletedAt       *time.Time              `json:"concluida_em,omitempty"`
	Cost              decimal.Decimal         `json:"custo"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
}

func ToWorkOrderResponse(workOrder domain.WorkOrder) WorkOrderResponse {
	var planID *string
	if workOrder.PlanID != nil {
		id := workOrder.PlanID.String()
		planID = &id
	}

	var responsibleUserID *string
	if workOrder.ResponsibleUserID != nil {
		id := workOrder.ResponsibleUserID.String()
		responsibleUserID = &id
	}

	return WorkOrderResponse{
		ID:                workOrder.ID.String(),
		CondominiumID:     workOrder.CondominiumID.String(),
		Number:            workOrder.Number,
		AssetID:           workOrder.AssetID.String(),
		PlanID:            planID,
		Title:             workOrder.Title,
		Description:       workOrder.Description,
		Type:              string(workOrder.Type),
		Priority:          string(workOrder.Priority),
		Status:            string(workOrder.Status),
		ExecutorKind:      string(workOrder.ExecutorKind),
		ExecutorName:      workOrder.ExecutorName,
		ExecutorContact:   workOrder.ExecutorContact,
		ResponsibleUserID: responsibleUserID,
		NBRReferences:     workOrder.NBRReferences,
		Checklist:         toChecklistResponses(workOrder.ChecklistSnapshot),
		OpenedAt:          workOrder.OpenedAt,
		ScheduledAt:       workOrder.ScheduledAt,
		CompletedAt:       workOrder.CompletedAt,
		Cost:              workOrder.Cost,
		CreatedAt:         workOrder.CreatedAt,
		UpdatedAt:         workOrder.UpdatedAt,
	}
}

type WorkOrderLogResponse struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"os_id"`
	Timestamp   time.Time `json:"timestamp"`
	Actor       string    `json:"actor,omitempty"`
	FromStatus  *string   `json:"from_status,omitempty"`
	ToStatus    string    `json:"to_status"`
	Note        string    `json:"observacao,omitempty"`
}

func ToWorkOrderLogResponse(entry domain.WorkOrderLogEntry) WorkOrderLogResponse {
	var fromStatus *string
	if entry.FromStatus != nil {
		status := string(*entry.FromStatus)
		fromStatus = &status
	}

	return WorkOrderLogResponse{
		ID:          entry.ID.String(),
		WorkOrderID: entry.WorkOrderID.String(),
		Timestamp:   entry.Timestamp,
		Actor:       entry.Actor,
		FromStatus:  fromStatus,
		ToStatus:    string(entry.ToStatus),
		Note:        entry.Note,
	}
}
