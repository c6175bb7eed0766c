package internal

import (
	"time"

	"github.com/shopspring/decimal"

	"predial-server/internal/maintenance/domain"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

type WorkOrder struct {
	ID                string          `json:"id" gorm:"primaryKey"`
	CondominiumID     string          `json:"condominio_id" gorm:"column:condominio_id;not null;uniqueIndex:idx_os_condominio_numero"`
	Number            string          `json:"numero" gorm:"column:numero;not null;uniqueIndex:idx_os_condominio_numero"`
	AssetID           string          `json:"ativo_id" gorm:"column:ativo_id;index;not null"`
	PlanID            *string         `json:"plano_id" gorm:"column:plano_id;index"`
	Title             string          `json:"title" gorm:"not null"`
	Description       string          `json:"description"`
	Type              string          `json:"tipo" gorm:"column:tipo;index;not null"`
	Priority          string          `json:"priority" gorm:"not null"`
	Status            string          `json:"status" gorm:"index;not null"`
	ExecutorKind      string          `json:"executor_kind" gorm:"not null"`
	ExecutorName      string          `json:"executor_name"`
	ExecutorContact   string          `json:"executor_contact"`
	ResponsibleUserID *string         `json:"responsavel_id" gorm:"column:responsavel_id"`
	NBRReferences     StringList      `json:"nbr_references" gorm:"column:nbr_references;type:text"`
	ChecklistSnapshot Checklist       `json:"checklist_snapshot" gorm:"type:text"`
	OpenedAt          time.Time       `json:"opened_at" gorm:"not null"`
	ScheduledAt       *time.Time      `json:"scheduled_at"`
	CompletedAt       *time.Time      `json:"completed_at"`
	Cost              decimal.Decimal `json:"cost" gorm:"type:decimal(12,2)"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (WorkOrder) TableName() string {
	return "os"
}

func (w WorkOrder) ToDomain() domain.WorkOrder {
	var planID *shareddomain.ID
	if w.PlanID != nil {
		id := shareddomain.ID(*w.PlanID)
		planID = &id
	}

	var responsibleUserID *shareddomain.ID
	if w.ResponsibleUserID != nil {
		id := shareddomain.ID(*w.ResponsibleUserID)
		responsibleUserID = &id
	}

	return domain.WorkOrder{
		ID:                shareddomain.ID(w.ID),
		CondominiumID:     shareddomain.ID(w.CondominiumID),
		Number:            w.Number,
		AssetID:           shareddomain.ID(w.AssetID),
		PlanID:            planID,
		Title:             w.Title,
		Description:       w.Description,
		Type:              domain.WorkOrderType(w.Type),
		Priority:          domain.Priority(w.Priority),
		Status:            domain.Status(w.Status),
		ExecutorKind:      domain.ExecutorKind(w.ExecutorKind),
		ExecutorName:      w.ExecutorName,
		ExecutorContact:   w.ExecutorContact,
		ResponsibleUserID: responsibleUserID,
		NBRReferences:     w.NBRReferences,
		ChecklistSnapshot: w.ChecklistSnapshot,
		OpenedAt:          w.OpenedAt,
		ScheduledAt:       w.ScheduledAt,
		CompletedAt:       w.CompletedAt,
		Cost:              w.Cost,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}

func FromWorkOrder(value domain.WorkOrder) WorkOrder {
	var planID *string
	if value.PlanID != nil {
		id := value.PlanID.String()
		planID = &id
	}

	var responsibleUserID *string
	if value.ResponsibleUserID != nil {
		id := value.ResponsibleUserID.String()
		responsibleUserID = &id
	}

	return WorkOrder{
		ID:                value.ID.String(),
		CondominiumID:     value.CondominiumID.String(),
		Number:            value.Number,
		AssetID:           value.AssetID.String(),
		PlanID:            planID,
		Title:             value.Title,
		Description:       value.Description,
		Type:              string(value.Type),
		Priority:          string(value.Priority),
		Status:            string(value.Status),
		ExecutorKind:      string(value.ExecutorKind),
		ExecutorName:      value.ExecutorName,
		ExecutorContact:   value.ExecutorContact,
		ResponsibleUserID: responsibleUserID,
		NBRReferences:     StringList(value.NBRReferences),
		ChecklistSnapshot: Checklist(value.ChecklistSnapshot),
		OpenedAt:          value.OpenedAt,
		ScheduledAt:       value.ScheduledAt,
		CompletedAt:       value.CompletedAt,
		Cost:              value.Cost,
		CreatedAt:         value.CreatedAt,
		UpdatedAt:         value.UpdatedAt,
	}
}
