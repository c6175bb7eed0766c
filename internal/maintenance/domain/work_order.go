package domain

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"predial-server/internal/infra/utils"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

var (
	ErrWorkOrderTitleRequired  = errors.New("work order title is required")
	ErrWorkOrderAssetRequired  = errors.New("work order asset is required")
	ErrInvalidWorkOrderType    = errors.New("invalid work order type")
	ErrInvalidPriority         = errors.New("invalid priority")
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidExecutorKind     = errors.New("invalid executor kind")
	ErrExternalExecutorDetails = errors.New("external executor requires name and contact")
	ErrInternalResponsible     = errors.New("internal executor requires a responsible user")
	ErrInvalidTransition       = errors.New("invalid status transition")
)

// NumberPattern is the public contract for work-order numbers.
var NumberPattern = regexp.MustCompile(`^OS-\d{4}-\d{4}$`)

// FormatNumber renders a work-order number for a year and sequence.
func FormatNumber(year, seq int) string {
	return fmt.Sprintf("OS-%04d-%04d", year, seq)
}

type WorkOrderType string

const (
	TypePreventiva  WorkOrderType = "preventiva"
	TypeCorretiva   WorkOrderType = "corretiva"
	TypePreditiva   WorkOrderType = "preditiva"
	TypeEmergencial WorkOrderType = "emergencial"
)

func (t WorkOrderType) IsValid() bool {
	switch t {
	case TypePreventiva, TypeCorretiva, TypePreditiva, TypeEmergencial:
		return true
	}
	return false
}

type Priority string

const (
	PriorityBaixa   Priority = "baixa"
	PriorityMedia   Priority = "media"
	PriorityAlta    Priority = "alta"
	PriorityUrgente Priority = "urgente"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityBaixa, PriorityMedia, PriorityAlta, PriorityUrgente:
		return true
	}
	return false
}

type Status string

const (
	StatusAberta              Status = "aberta"
	StatusEmAndamento         Status = "em_andamento"
	StatusAguardandoValidacao Status = "aguardando_validacao"
	StatusConcluida           Status = "concluida"
	StatusCancelada           Status = "cancelada"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAberta, StatusEmAndamento, StatusAguardandoValidacao, StatusConcluida, StatusCancelada:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusConcluida || s == StatusCancelada
}

// allowedTransitions is the strict state machine: completion always routes
// through em_andamento, there is no fast path from aberta to concluida.
var allowedTransitions = map[Status][]Status{
	StatusAberta:              {StatusEmAndamento, StatusCancelada},
	StatusEmAndamento:         {StatusAguardandoValidacao, StatusConcluida, StatusCancelada},
	StatusAguardandoValidacao: {StatusConcluida},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type ExecutorKind string

const (
	ExecutorInterno ExecutorKind = "interno"
	ExecutorExterno ExecutorKind = "externo"
)

func (k ExecutorKind) IsValid() bool {
	return k == ExecutorInterno || k == ExecutorExterno
}

type WorkOrder struct {
	ID                shareddomain.ID
	CondominiumID     shareddomain.ID
	Number            string
	AssetID           shareddomain.ID
	PlanID            *shareddomain.ID
	Title             string
	Description       string
	Type              WorkOrderType
	Priority          Priority
	Status            Status
	ExecutorKind      ExecutorKind
	ExecutorName      string
	ExecutorContact   string
	ResponsibleUserID *shareddomain.ID
	NBRReferences     []string
	ChecklistSnapshot []ChecklistItem
	OpenedAt          time.Time
	ScheduledAt       *time.Time
	CompletedAt       *time.Time
	Cost              decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TransitionTo moves the work order along the state machine. On concluida it
// stamps CompletedAt.
func (w *WorkOrder) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !w.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, w.Status, next)
	}

	w.Status = next
	now := time.Now()
	if next == StatusConcluida {
		w.CompletedAt = &now
	}
	w.UpdatedAt = now

	return nil
}

func NewWorkOrderBuilder() *workOrderBuilder {
	return &workOrderBuilder{}
}

type workOrderBuilder struct {
	actions []workOrderHandler
}

type workOrderHandler func(w *WorkOrder) error

func (b *workOrderBuilder) WithCondominiumID(id shareddomain.ID) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.CondominiumID = id
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithAssetID(id shareddomain.ID) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		if id == "" {
			return ErrWorkOrderAssetRequired
		}
		w.AssetID = id
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithPlanID(id *shareddomain.ID) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.PlanID = id
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithTitle(title string) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		if title == "" {
			return ErrWorkOrderTitleRequired
		}
		w.Title = title
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithDescription(description string) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.Description = description
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithType(workOrderType WorkOrderType) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		if !workOrderType.IsValid() {
			return ErrInvalidWorkOrderType
		}
		w.Type = workOrderType
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithPriority(priority Priority) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		if !priority.IsValid() {
			return ErrInvalidPriority
		}
		w.Priority = priority
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithExecutor(kind ExecutorKind, name, contact string) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		if !kind.IsValid() {
			return ErrInvalidExecutorKind
		}
		if kind == ExecutorExterno && (name == "" || contact == "") {
			return ErrExternalExecutorDetails
		}
		w.ExecutorKind = kind
		w.ExecutorName = name
		w.ExecutorContact = contact
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithResponsibleUserID(id *shareddomain.ID) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.ResponsibleUserID = id
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithNBRReferences(references []string) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.NBRReferences = references
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithChecklistSnapshot(items []ChecklistItem) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.ChecklistSnapshot = items
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithScheduledAt(scheduledAt *time.Time) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.ScheduledAt = scheduledAt
		return nil
	})
	return b
}

func (b *workOrderBuilder) WithCost(cost decimal.Decimal) *workOrderBuilder {
	b.actions = append(b.actions, func(w *WorkOrder) error {
		w.Cost = cost
		return nil
	})
	return b
}

func (b *workOrderBuilder) Build() (WorkOrder, error) {
	now := time.Now()
	result := WorkOrder{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		Status:    StatusAberta,
		OpenedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return WorkOrder{}, err
		}
	}

	if result.Title == "" {
		return WorkOrder{}, ErrWorkOrderTitleRequired
	}
	if result.AssetID == "" {
		return WorkOrder{}, ErrWorkOrderAssetRequired
	}
	if !result.Type.IsValid() {
		return WorkOrder{}, ErrInvalidWorkOrderType
	}
	if !result.Priority.IsValid() {
		return WorkOrder{}, ErrInvalidPriority
	}
	if !result.ExecutorKind.IsValid() {
		return WorkOrder{}, ErrInvalidExecutorKind
	}
	if result.ExecutorKind == ExecutorInterno && result.ResponsibleUserID == nil {
		return WorkOrder{}, ErrInternalResponsible
	}

	return result, nil
}
