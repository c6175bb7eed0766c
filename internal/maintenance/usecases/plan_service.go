package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"predial-server/internal/maintenance/domain"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

//go:generate mockgen -source=plan_service.go -destination=../../../test/unit/doubles/maintenance/usecases/plan_service_mock.go -package=usecases -mock_names=PlanService=MockPlanService

type PlanService interface {
	GeneratePlansForAsset(ctx context.Context, condominiumID, assetID shareddomain.ID) (int, error)
	GetPlan(ctx context.Context, id shareddomain.ID) (domain.MaintenancePlan, error)
	ListPlans(ctx context.Context, condominiumID shareddomain.ID, pagination sharedusecases.Pagination) ([]domain.MaintenancePlan, int, error)
}

func NewPlanService(
	repository PlanRepository,
	assets AssetProvider,
	catalog CatalogProvider,
) *SimplePlanService {
	return &SimplePlanService{
		repository: repository,
		assets:     assets,
		catalog:    catalog,
	}
}

var _ PlanService = &SimplePlanService{}

type SimplePlanService struct {
	repository PlanRepository
	assets     AssetProvider
	catalog    CatalogProvider
}

// GeneratePlansForAsset creates one plan per applicable requirement,
// skipping pairs that already exist. Safe to call more than once for the
// same asset.
func (s *SimplePlanService) GeneratePlansForAsset(ctx context.Context, condominiumID, assetID shareddomain.ID) (int, error) {
	asset, err := s.assets.GetAsset(ctx, condominiumID, assetID)
	if err != nil {
		return 0, fmt.Errorf("getting asset: %w", err)
	}

	assetType, err := s.catalog.GetAssetType(ctx, asset.AssetTypeSlug)
	if err != nil {
		return 0, fmt.Errorf("getting asset type: %w", err)
	}

	if !assetType.RequiresCompliance {
		return 0, nil
	}

	requirements, err := s.catalog.ListRequirements(ctx, asset.AssetTypeSlug)
	if err != nil {
		return 0, fmt.Errorf("listing requirements: %w", err)
	}

	plans := make([]domain.MaintenancePlan, 0, len(requirements))
	for _, requirement := range requirements {
		periodicity, err := domain.ParsePeriodicity(requirement.Periodicity)
		if err != nil {
			return 0, fmt.Errorf("requirement %q: %w", requirement.Code, err)
		}

		plan, err := domain.NewPlanBuilder().
			WithCondominiumID(condominiumID).
			WithAssetID(assetID).
			WithRequirementCode(requirement.Code).
			WithTitle(requirement.Title).
			WithDescription(requirement.Description).
			WithPeriodicity(periodicity).
			WithResponsibleRole(domain.ResponsibleRole(requirement.ResponsibleRole)).
			WithIsLegal(requirement.IsLegal).
			WithChecklist(requirement.Checklist).
			WithNBRReferences([]string{requirement.Code}).
			Build()
		if err != nil {
			return 0, fmt.Errorf("building plan for %q: %w", requirement.Code, err)
		}

		plans = append(plans, plan)
	}

	created, err := s.repository.CreateMissing(ctx, plans)
	if err != nil {
		slog.Error("generating plans", slog.String("error", err.Error()))
		return 0, fmt.Errorf("creating plans: %w", err)
	}

	slog.Info("plans generated",
		slog.String("asset_id", assetID.String()),
		slog.Int("applicable", len(plans)),
		slog.Int("created", created))

	return created, nil
}

func (s *SimplePlanService) GetPlan(ctx context.Context, id shareddomain.ID) (domain.MaintenancePlan, error) {
	plan, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			return domain.MaintenancePlan{}, ErrPlanNotFound
		}
		slog.Error("getting plan", slog.String("error", err.Error()))
		return domain.MaintenancePlan{}, fmt.Errorf("getting plan: %w", err)
	}

	return plan, nil
}

func (s *SimplePlanService) ListPlans(ctx context.Context, condominiumID shareddomain.ID, pagination sharedusecases.Pagination) ([]domain.MaintenancePlan, int, error) {
	plans, total, err := s.repository.FindByCondominium(ctx, condominiumID, pagination)
	if err != nil {
		slog.Error("listing plans", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing plans: %w", err)
	}

	return plans, total, nil
}
