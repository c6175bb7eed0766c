package usecases

import (
	"context"
	"errors"

	"predial-server/internal/maintenance/domain"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

//go:generate mockgen -source=ports.go -destination=../../../test/unit/doubles/maintenance/usecases/ports_mock.go -package=usecases

var (
	ErrPlanNotFound             = errors.New("maintenance plan not found")
	ErrWorkOrderNotFound        = errors.New("work order not found")
	ErrWorkOrderNumberExhausted = errors.New("work order number allocation exhausted")
	ErrAssetNotFound            = errors.New("asset not found")
	ErrAssetTypeNotFound        = errors.New("asset type not found")
	ErrPlanTenantMismatch       = errors.New("plan does not belong to the condominium")
	ErrPlanAssetMismatch        = errors.New("plan does not belong to the asset")
	ErrResponsibleUserNotFound  = errors.New("responsible user not found")
)

// AssetInfo is the slice of the asset registry the engine needs.
type AssetInfo struct {
	ID            shareddomain.ID
	CondominiumID shareddomain.ID
	AssetTypeSlug string
	Name          string
}

// AssetProvider resolves tenant-scoped assets. Implemented by the asset
// registry.
type AssetProvider interface {
	GetAsset(ctx context.Context, condominiumID, assetID shareddomain.ID) (AssetInfo, error)
}

// AssetTypeInfo carries the compliance flag that gates plan generation.
type AssetTypeInfo struct {
	Slug               string
	Name               string
	RequiresCompliance bool
}

// RequirementInfo is a catalog requirement ready for plan generation.
type RequirementInfo struct {
	Code            string
	Title           string
	Description     string
	Periodicity     string
	ResponsibleRole string
	IsLegal         bool
	Checklist       []domain.ChecklistItem
}

// CatalogProvider resolves asset types and their normative requirements.
// Implemented by the catalog context.
type CatalogProvider interface {
	GetAssetType(ctx context.Context, slug string) (AssetTypeInfo, error)
	ListRequirements(ctx context.Context, assetTypeSlug string) ([]RequirementInfo, error)
}

// UserResolver checks that an internal responsible user exists in the
// tenant. Implemented by the shared kernel.
type UserResolver interface {
	UserExists(ctx context.Context, condominiumID, userID shareddomain.ID) (bool, error)
}

type PlanRepository interface {
	// CreateMissing inserts the plans whose (asset, requirement code) pair
	// does not exist yet, atomically, and returns how many were created.
	CreateMissing(ctx context.Context, plans []domain.MaintenancePlan) (int, error)
	GetByID(ctx context.Context, id shareddomain.ID) (domain.MaintenancePlan, error)
	Update(ctx context.Context, plan domain.MaintenancePlan) error
	FindByCondominium(ctx context.Context, condominiumID shareddomain.ID, pagination sharedusecases.Pagination) ([]domain.MaintenancePlan, int, error)
	FindAllByCondominium(ctx context.Context, condominiumID shareddomain.ID) ([]domain.MaintenancePlan, error)
	FindDueWithin(ctx context.Context, days int) ([]domain.MaintenancePlan, error)
}

// WorkOrderFilter narrows work-order listings.
type WorkOrderFilter struct {
	Status string
	Type   string
}

type WorkOrderRepository interface {
	// Create allocates the sequential number and inserts the work order
	// together with its opening log entry in one transaction. The assigned
	// number is written back to the work order.
	Create(ctx context.Context, workOrder *domain.WorkOrder, openingEntry domain.WorkOrderLogEntry) error
	GetByID(ctx context.Context, id shareddomain.ID) (domain.WorkOrder, error)
	// UpdateWithLog persists a status change, its log entry and, when
	// non-nil, the advanced plan in one transaction.
	UpdateWithLog(ctx context.Context, workOrder domain.WorkOrder, entry domain.WorkOrderLogEntry, plan *domain.MaintenancePlan) error
	FindByCondominium(ctx context.Context, condominiumID shareddomain.ID, filter WorkOrderFilter, pagination sharedusecases.Pagination) ([]domain.WorkOrder, int, error)
	FindLogs(ctx context.Context, workOrderID shareddomain.ID) ([]domain.WorkOrderLogEntry, error)
}
