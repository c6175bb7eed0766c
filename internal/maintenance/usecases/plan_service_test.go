package usecases_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"predial-server/internal/maintenance/domain"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	mocks "predial-server/test/unit/doubles/maintenance/usecases"
)

var _ = Describe("SimplePlanService", func() {
	var (
		ctrl       *gomock.Controller
		repository *mocks.MockPlanRepository
		assets     *mocks.MockAssetProvider
		catalog    *mocks.MockCatalogProvider
		service    *usecases.SimplePlanService
		ctx        context.Context

		condominiumID = shareddomain.ID("cond-1")
		assetID       = shareddomain.ID("ativo-1")
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repository = mocks.NewMockPlanRepository(ctrl)
		assets = mocks.NewMockAssetProvider(ctrl)
		catalog = mocks.NewMockCatalogProvider(ctrl)
		service = usecases.NewPlanService(repository, assets, catalog)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("GeneratePlansForAsset", func() {
		elevatorRequirements := []usecases.RequirementInfo{
			{
				Code:            "NBR 16083",
				Title:           "Manutencao mensal de elevadores",
				Periodicity:     "30d",
				ResponsibleRole: "terceirizado",
				IsLegal:         true,
				Checklist: []domain.ChecklistItem{
					{Description: "Testar freio de emergencia", Mandatory: true},
				},
			},
		}

		It("creates one plan per applicable requirement", func() {
			assets.EXPECT().GetAsset(ctx, condominiumID, assetID).
				Return(usecases.AssetInfo{ID: assetID, CondominiumID: condominiumID, AssetTypeSlug: "elevador"}, nil)
			catalog.EXPECT().GetAssetType(ctx, "elevador").
				Return(usecases.AssetTypeInfo{Slug: "elevador", RequiresCompliance: true}, nil)
			catalog.EXPECT().ListRequirements(ctx, "elevador").Return(elevatorRequirements, nil)
			repository.EXPECT().CreateMissing(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, plans []domain.MaintenancePlan) (int, error) {
					Expect(plans).To(HaveLen(1))
					Expect(plans[0].RequirementCode).To(Equal("NBR 16083"))
					Expect(plans[0].CondominiumID).To(Equal(condominiumID))
					Expect(plans[0].AssetID).To(Equal(assetID))
					Expect(plans[0].Periodicity).To(Equal(domain.Periodicity{Days: 30}))
					Expect(plans[0].NextDueAt).ToNot(BeZero())
					Expect(plans[0].Checklist).To(HaveLen(1))
					return len(plans), nil
				})

			created, err := service.GeneratePlansForAsset(ctx, condominiumID, assetID)
			Expect(err).ToNot(HaveOccurred())
			Expect(created).To(Equal(1))
		})

		It("creates nothing on a repeat run", func() {
			assets.EXPECT().GetAsset(ctx, condominiumID, assetID).
				Return(usecases.AssetInfo{ID: assetID, CondominiumID: condominiumID, AssetTypeSlug: "elevador"}, nil).Times(2)
			catalog.EXPECT().GetAssetType(ctx, "elevador").
				Return(usecases.AssetTypeInfo{Slug: "elevador", RequiresCompliance: true}, nil).Times(2)
			catalog.EXPECT().ListRequirements(ctx, "elevador").Return(elevatorRequirements, nil).Times(2)

			gomock.InOrder(
				repository.EXPECT().CreateMissing(ctx, gomock.Any()).Return(1, nil),
				repository.EXPECT().CreateMissing(ctx, gomock.Any()).Return(0, nil),
			)

			first, err := service.GeneratePlansForAsset(ctx, condominiumID, assetID)
			Expect(err).ToNot(HaveOccurred())
			Expect(first).To(Equal(1))

			second, err := service.GeneratePlansForAsset(ctx, condominiumID, assetID)
			Expect(err).ToNot(HaveOccurred())
			Expect(second).To(BeZero())
		})

		It("skips asset types without compliance requirements", func() {
			assets.EXPECT().GetAsset(ctx, condominiumID, assetID).
				Return(usecases.AssetInfo{ID: assetID, CondominiumID: condominiumID, AssetTypeSlug: "piscina"}, nil)
			catalog.EXPECT().GetAssetType(ctx, "piscina").
				Return(usecases.AssetTypeInfo{Slug: "piscina", RequiresCompliance: false}, nil)

			created, err := service.GeneratePlansForAsset(ctx, condominiumID, assetID)
			Expect(err).ToNot(HaveOccurred())
			Expect(created).To(BeZero())
		})

		It("fails when the asset cannot be found", func() {
			assets.EXPECT().GetAsset(ctx, condominiumID, assetID).
				Return(usecases.AssetInfo{}, usecases.ErrAssetNotFound)

			_, err := service.GeneratePlansForAsset(ctx, condominiumID, assetID)
			Expect(err).To(MatchError(usecases.ErrAssetNotFound))
		})

		It("rejects malformed requirement periodicities", func() {
			assets.EXPECT().GetAsset(ctx, condominiumID, assetID).
				Return(usecases.AssetInfo{ID: assetID, CondominiumID: condominiumID, AssetTypeSlug: "elevador"}, nil)
			catalog.EXPECT().GetAssetType(ctx, "elevador").
				Return(usecases.AssetTypeInfo{Slug: "elevador", RequiresCompliance: true}, nil)
			catalog.EXPECT().ListRequirements(ctx, "elevador").Return([]usecases.RequirementInfo{
				{Code: "NBR 0000", Title: "Requisito quebrado", Periodicity: "monthly"},
			}, nil)

			_, err := service.GeneratePlansForAsset(ctx, condominiumID, assetID)
			Expect(err).To(MatchError(domain.ErrInvalidPeriodicity))
		})
	})

	Describe("GetPlan", func() {
		It("returns not found untouched", func() {
			repository.EXPECT().GetByID(ctx, shareddomain.ID("plano-x")).
				Return(domain.MaintenancePlan{}, usecases.ErrPlanNotFound)

			_, err := service.GetPlan(ctx, "plano-x")
			Expect(err).To(MatchError(usecases.ErrPlanNotFound))
		})
	})
})
