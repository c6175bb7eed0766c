package domain

import (
	"errors"
	"time"

	"predial-server/internal/infra/utils"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

var (
	ErrPlanTitleRequired       = errors.New("plan title is required")
	ErrPlanPeriodicityRequired = errors.New("plan periodicity is required")
	ErrInvalidResponsibleRole  = errors.New("invalid responsible role")
)

type ResponsibleRole string

const (
	ResponsibleSindico      ResponsibleRole = "sindico"
	ResponsibleZelador      ResponsibleRole = "zelador"
	ResponsibleTerceirizado ResponsibleRole = "terceirizado"
)

func (r ResponsibleRole) IsValid() bool {
	switch r {
	case ResponsibleSindico, ResponsibleZelador, ResponsibleTerceirizado:
		return true
	}
	return false
}

// ChecklistItem is one step of a plan or work-order checklist. Done is only
// meaningful on work-order snapshots.
type ChecklistItem struct {
	Description string `json:"description"`
	Mandatory   bool   `json:"mandatory"`
	Done        bool   `json:"done"`
}

// MaintenancePlan is a recurring obligation tied to an asset and a
// requirement code. At most one plan exists per (asset, requirement code).
type MaintenancePlan struct {
	ID              shareddomain.ID
	CondominiumID   shareddomain.ID
	AssetID         shareddomain.ID
	RequirementCode string
	Title           string
	Description     string
	Periodicity     Periodicity
	ResponsibleRole ResponsibleRole
	IsLegal         bool
	Checklist       []ChecklistItem
	NBRReferences   []string
	LastExecutedAt  *time.Time
	NextDueAt       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AdvanceExecution records a completed execution and pushes the next due
// date forward. NextDueAt never decreases.
func (p *MaintenancePlan) AdvanceExecution(executedAt time.Time) {
	executed := utils.DateOnly(executedAt)
	p.LastExecutedAt = &executed

	candidate := p.Periodicity.NextDue(&executed, p.CreatedAt)
	if candidate.After(p.NextDueAt) {
		p.NextDueAt = candidate
	}

	p.UpdatedAt = time.Now()
}

// ClassifyAt reports the plan's dashboard status at the given instant. A
// plan counts as executed while its last execution still covers the current
// cycle.
func (p *MaintenancePlan) ClassifyAt(now time.Time) Classification {
	executed := p.LastExecutedAt != nil &&
		!utils.DateOnly(now).After(p.NextDueAt) &&
		!p.LastExecutedAt.Before(p.Periodicity.previousCycleStart(p.NextDueAt))

	return Classify(p.NextDueAt, now, executed)
}

// previousCycleStart walks one period back from the due date.
func (p Periodicity) previousCycleStart(nextDue time.Time) time.Time {
	inverse := Periodicity{Years: -p.Years, Months: -p.Months, Days: -p.Days}
	return inverse.addTo(utils.DateOnly(nextDue))
}

func NewPlanBuilder() *planBuilder {
	return &planBuilder{}
}

type planBuilder struct {
	actions []planHandler
}

type planHandler func(p *MaintenancePlan) error

func (b *planBuilder) WithCondominiumID(id shareddomain.ID) *planBuilder {
	b.actions = append(b.actions, func(p *MaintenancePlan) error {
		p.CondominiumID = id
		return nil
	})
	return b
}

func (b *planBuilder) WithAssetID(id shareddomain.ID) *planBuilder {
	b.actions = append(b.actions, func(p *MaintenancePlan) error {
		p.AssetID = id
		return nil
	})
	return b
}

func (b *planBuilder) WithRequirementCode(code string) *planBuilder {
	b.actions = append(b.actions, func(p *MaintenancePlan) error {
		p.RequirementCode = code
		return nil
	})
	return b
}

func (b *planBuilder) WithTitle(title string) *planBuilder {
	b.actions = append(b.actions, func(p *MaintenancePlan) error {
		if title == "" {
			return ErrPlanTitleRequired
		}
		p.Title = title
		return nil
	})
	return b
}

func (b *planBuilder) WithDescription(description string) *planBuilder {
	b.actions = append(b.actions, func(p *MaintenancePlan) error {
		p.Description = description
		return nil
	})
	return b
}

func (b *planBuilder) WithPeriodicity(periodicity Periodicity) *planBuilder {
	b.actions = append(b.actions, func(p *MaintenancePlan) error {
		if periodicity.IsZero() {
			return ErrPlanPeriodicityRequired
		}
		p.Periodicity = periodicity
		return nil
	})
	return b
}

func (b *planBuilder) WithResponsibleRole(role ResponsibleRole) *planBuilder {
	b.actions = append(b.actions, func(p *MaintenancePlan) error {
		if !role.IsValid() {
			return ErrInvalidResponsibleRole
		}
		p.ResponsibleRole = role
		return nil
	})
	return b
}

func (b *planBuilder) WithIsLegal(isLegal bool) *planBuilder {
	b.actions = append(b.actions, func(p *MaintenancePlan) error {
		p.IsLegal = isLegal
		return nil
	})
	return b
}

func (b *planBuilder) WithChecklist(items []ChecklistItem) *planBuilder {
	b.actions = append(b.actions, func(p *MaintenancePlan) error {
		p.Checklist = items
		return nil
	})
	return b
}

func (b *planBuilder) WithNBRReferences(references []string) *planBuilder {
	b.actions = append(b.actions, func(p *MaintenancePlan) error {
		p.NBRReferences = references
		return nil
	})
	return b
}

func (b *planBuilder) Build() (MaintenancePlan, error) {
	now := time.Now()
	result := MaintenancePlan{
		ID:        shareddomain.ID(utils.GenerateUUID()),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for _, action := range b.actions {
		if err := action(&result); err != nil {
			return MaintenancePlan{}, err
		}
	}

	if result.Title == "" {
		return MaintenancePlan{}, ErrPlanTitleRequired
	}
	if result.Periodicity.IsZero() {
		return MaintenancePlan{}, ErrPlanPeriodicityRequired
	}

	result.NextDueAt = result.Periodicity.NextDue(nil, now)

	return result, nil
}
