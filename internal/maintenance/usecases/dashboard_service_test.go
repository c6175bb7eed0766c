package usecases_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"predial-server/internal/infra/cache"
	"predial-server/internal/maintenance/domain"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	mocks "predial-server/test/unit/doubles/maintenance/usecases"
)

var _ = Describe("SimpleDashboardService", func() {
	var (
		ctrl    *gomock.Controller
		plans   *mocks.MockPlanRepository
		service *usecases.SimpleDashboardService
		ctx     context.Context

		condominiumID = shareddomain.ID("cond-1")
		now           = time.Date(2025, time.March, 10, 14, 0, 0, 0, time.UTC)
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		plans = mocks.NewMockPlanRepository(ctrl)

		kpiCache, err := cache.New(nil)
		Expect(err).ToNot(HaveOccurred())

		service = usecases.NewDashboardService(plans, kpiCache)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	planDueAt := func(due time.Time) domain.MaintenancePlan {
		return domain.MaintenancePlan{
			ID:            shareddomain.ID("plano-" + due.Format("20060102")),
			CondominiumID: condominiumID,
			AssetID:       "ativo-1",
			Title:         "Manutencao mensal",
			Periodicity:   domain.Periodicity{Days: 30},
			NextDueAt:     due,
		}
	}

	It("classifies the plan set into the dashboard counters", func() {
		overdue := planDueAt(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
		imminent := planDueAt(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC))
		scheduled := planDueAt(time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC))

		executedAt := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
		executed := planDueAt(time.Date(2025, time.April, 4, 0, 0, 0, 0, time.UTC))
		executed.LastExecutedAt = &executedAt

		plans.EXPECT().FindAllByCondominium(ctx, condominiumID).
			Return([]domain.MaintenancePlan{overdue, imminent, scheduled, executed}, nil)

		kpis, err := service.ComputeKPIs(ctx, condominiumID, now)
		Expect(err).ToNot(HaveOccurred())
		Expect(kpis.TotalPlans).To(Equal(4))
		Expect(kpis.DueThisMonth).To(Equal(2))
		Expect(kpis.Overdue).To(Equal(1))
		Expect(kpis.ImminentWithin7Days).To(Equal(1))
		Expect(kpis.ComplianceRate).To(Equal(25))
	})

	It("only counts plans within seven days as imminent", func() {
		within := planDueAt(time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC))
		beyond := planDueAt(time.Date(2025, time.March, 22, 0, 0, 0, 0, time.UTC))

		plans.EXPECT().FindAllByCondominium(ctx, condominiumID).
			Return([]domain.MaintenancePlan{within, beyond}, nil)

		kpis, err := service.ComputeKPIs(ctx, condominiumID, now)
		Expect(err).ToNot(HaveOccurred())
		Expect(kpis.ImminentWithin7Days).To(Equal(1))
	})

	It("returns zeroed counters when the tenant has no plans", func() {
		plans.EXPECT().FindAllByCondominium(ctx, condominiumID).
			Return([]domain.MaintenancePlan{}, nil)

		kpis, err := service.ComputeKPIs(ctx, condominiumID, now)
		Expect(err).ToNot(HaveOccurred())
		Expect(kpis).To(Equal(usecases.DashboardKPIs{}))
	})

	It("serves repeated reads from the cache", func() {
		plans.EXPECT().FindAllByCondominium(ctx, condominiumID).
			Return([]domain.MaintenancePlan{planDueAt(now.AddDate(0, 1, 0))}, nil).
			Times(1)

		first, err := service.ComputeKPIs(ctx, condominiumID, now)
		Expect(err).ToNot(HaveOccurred())

		time.Sleep(10 * time.Millisecond)

		second, err := service.ComputeKPIs(ctx, condominiumID, now)
		Expect(err).ToNot(HaveOccurred())
		Expect(second).To(Equal(first))
	})

	It("keeps tenants in separate cache entries", func() {
		other := shareddomain.ID("cond-2")
		plans.EXPECT().FindAllByCondominium(ctx, condominiumID).
			Return([]domain.MaintenancePlan{planDueAt(now.AddDate(0, 1, 0))}, nil)
		plans.EXPECT().FindAllByCondominium(ctx, other).
			Return([]domain.MaintenancePlan{}, nil)

		kpis, err := service.ComputeKPIs(ctx, condominiumID, now)
		Expect(err).ToNot(HaveOccurred())
		Expect(kpis.TotalPlans).To(Equal(1))

		otherKPIs, err := service.ComputeKPIs(ctx, other, now)
		Expect(err).ToNot(HaveOccurred())
		Expect(otherKPIs.TotalPlans).To(Equal(0))
	})

	It("propagates repository failures without caching them", func() {
		plans.EXPECT().FindAllByCondominium(ctx, condominiumID).
			Return(nil, errors.New("connection reset"))

		_, err := service.ComputeKPIs(ctx, condominiumID, now)
		Expect(err).To(HaveOccurred())
	})
})
