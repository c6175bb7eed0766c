package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"predial-server/internal/infra/cache"
	"predial-server/internal/maintenance/domain"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=dashboard_service.go -destination=../../../test/unit/doubles/maintenance/usecases/dashboard_service_mock.go -package=usecases -mock_names=DashboardService=MockDashboardService

const kpiCacheTTL = 60 * time.Second

// DashboardKPIs aggregates the plan set of one condominium.
type DashboardKPIs struct {
	TotalPlans          int `json:"total_planos"`
	DueThisMonth        int `json:"vencem_no_mes"`
	Overdue             int `json:"atrasados"`
	ImminentWithin7Days int `json:"iminentes_7_dias"`
	ComplianceRate      int `json:"taxa_conformidade"`
}

type DashboardService interface {
	ComputeKPIs(ctx context.Context, condominiumID shareddomain.ID, now time.Time) (DashboardKPIs, error)
}

func NewDashboardService(plans PlanRepository, kpiCache cache.Cache) *SimpleDashboardService {
	return &SimpleDashboardService{
		plans: plans,
		cache: kpiCache,
	}
}

var _ DashboardService = &SimpleDashboardService{}

type SimpleDashboardService struct {
	plans PlanRepository
	cache cache.Cache
}

// ComputeKPIs classifies every plan of the tenant. Results are cached for a
// minute per condominium; slightly stale numbers are acceptable.
func (s *SimpleDashboardService) ComputeKPIs(ctx context.Context, condominiumID shareddomain.ID, now time.Time) (DashboardKPIs, error) {
	key := fmt.Sprintf("dashboard:kpis:%s", condominiumID)

	value, err := s.cache.GetOrSet(ctx, key, kpiCacheTTL, func() (any, error) {
		return s.computeKPIs(ctx, condominiumID, now)
	})
	if err != nil {
		return DashboardKPIs{}, err
	}

	kpis, ok := value.(DashboardKPIs)
	if !ok {
		return DashboardKPIs{}, fmt.Errorf("unexpected cached value type %T", value)
	}

	return kpis, nil
}

func (s *SimpleDashboardService) computeKPIs(ctx context.Context, condominiumID shareddomain.ID, now time.Time) (DashboardKPIs, error) {
	plans, err := s.plans.FindAllByCondominium(ctx, condominiumID)
	if err != nil {
		slog.Error("loading plans for dashboard", slog.String("error", err.Error()))
		return DashboardKPIs{}, fmt.Errorf("loading plans: %w", err)
	}

	kpis := DashboardKPIs{TotalPlans: len(plans)}

	executed := 0
	for _, plan := range plans {
		if sameMonth(plan.NextDueAt, now) {
			kpis.DueThisMonth++
		}

		switch plan.ClassifyAt(now) {
		case domain.ClassificationExecutado:
			executed++
		case domain.ClassificationAtrasado:
			kpis.Overdue++
		case domain.ClassificationIminente:
			if domain.DaysUntilDue(plan.NextDueAt, now) <= 7 {
				kpis.ImminentWithin7Days++
			}
		}
	}

	if len(plans) > 0 {
		kpis.ComplianceRate = int(math.Round(float64(executed) / float64(len(plans)) * 100))
	}

	return kpis, nil
}

func sameMonth(a, b time.Time) bool {
	return a.UTC().Year() == b.UTC().Year() && a.UTC().Month() == b.UTC().Month()
}
