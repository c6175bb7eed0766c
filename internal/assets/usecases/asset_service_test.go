package usecases_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"predial-server/internal/assets/domain"
	"predial-server/internal/assets/usecases"
	catalogdomain "predial-server/internal/catalog/domain"
	catalogusecases "predial-server/internal/catalog/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
	assetmocks "predial-server/test/unit/doubles/assets/usecases"
	catalogmocks "predial-server/test/unit/doubles/catalog/usecases"
	sharedmocks "predial-server/test/unit/doubles/shared_kernel/usecases"
)

var _ = Describe("SimpleAssetService", func() {
	var (
		ctrl               *gomock.Controller
		repository         *assetmocks.MockAssetRepository
		condominiumService *sharedmocks.MockCondominiumService
		catalogService     *catalogmocks.MockCatalogService
		planGenerator      *assetmocks.MockPlanGenerator
		service            *usecases.SimpleAssetService
		ctx                context.Context

		condominiumID shareddomain.ID
		asset         domain.Asset
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repository = assetmocks.NewMockAssetRepository(ctrl)
		condominiumService = sharedmocks.NewMockCondominiumService(ctrl)
		catalogService = catalogmocks.NewMockCatalogService(ctrl)
		planGenerator = assetmocks.NewMockPlanGenerator(ctrl)
		service = usecases.NewAssetService(repository, condominiumService, catalogService, planGenerator)
		ctx = context.Background()

		condominiumID = shareddomain.ID("cond-1")

		var err error
		asset, err = domain.NewAssetBuilder().
			WithCondominiumID(condominiumID).
			WithAssetTypeSlug("elevador").
			WithName("Elevador Social Torre A").
			WithLocation(domain.Location{Tower: "A", Floor: "terreo", Place: "hall"}).
			Build()
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("CreateAsset", func() {
		It("persists the asset and generates its plans", func() {
			condominiumService.EXPECT().GetCondominium(ctx, condominiumID).
				Return(shareddomain.Condominium{ID: condominiumID, IsActive: true}, nil)
			catalogService.EXPECT().GetAssetTypeBySlug(ctx, "elevador").
				Return(catalogdomain.AssetType{Slug: "elevador", RequiresCompliance: true}, nil)
			repository.EXPECT().Create(ctx, asset).Return(nil)
			planGenerator.EXPECT().GeneratePlansForAsset(ctx, condominiumID, asset.ID).Return(2, nil)

			plansCreated, err := service.CreateAsset(ctx, asset)
			Expect(err).ToNot(HaveOccurred())
			Expect(plansCreated).To(Equal(2))
		})

		It("rejects assets of unknown types", func() {
			condominiumService.EXPECT().GetCondominium(ctx, condominiumID).
				Return(shareddomain.Condominium{ID: condominiumID, IsActive: true}, nil)
			catalogService.EXPECT().GetAssetTypeBySlug(ctx, "elevador").
				Return(catalogdomain.AssetType{}, catalogusecases.ErrAssetTypeNotFound)

			_, err := service.CreateAsset(ctx, asset)
			Expect(err).To(MatchError(catalogusecases.ErrAssetTypeNotFound))
		})

		It("rejects assets for missing condominiums", func() {
			condominiumService.EXPECT().GetCondominium(ctx, condominiumID).
				Return(shareddomain.Condominium{}, sharedusecases.ErrCondominiumNotFound)

			_, err := service.CreateAsset(ctx, asset)
			Expect(err).To(MatchError(sharedusecases.ErrCondominiumNotFound))
		})

		It("surfaces plan generation failures", func() {
			condominiumService.EXPECT().GetCondominium(ctx, condominiumID).
				Return(shareddomain.Condominium{ID: condominiumID, IsActive: true}, nil)
			catalogService.EXPECT().GetAssetTypeBySlug(ctx, "elevador").
				Return(catalogdomain.AssetType{Slug: "elevador"}, nil)
			repository.EXPECT().Create(ctx, asset).Return(nil)
			planGenerator.EXPECT().GeneratePlansForAsset(ctx, condominiumID, asset.ID).
				Return(0, errors.New("deadlock detected"))

			_, err := service.CreateAsset(ctx, asset)
			Expect(err).To(MatchError(ContainSubstring("generating plans")))
		})
	})

	Describe("DeleteAsset", func() {
		It("soft deletes the asset", func() {
			repository.EXPECT().GetByID(ctx, condominiumID, asset.ID).Return(asset, nil)
			repository.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, updated domain.Asset) error {
					Expect(updated.DeletedAt).ToNot(BeNil())
					return nil
				})

			Expect(service.DeleteAsset(ctx, condominiumID, asset.ID)).To(Succeed())
		})

		It("refuses to delete twice", func() {
			asset.SoftDelete()
			repository.EXPECT().GetByID(ctx, condominiumID, asset.ID).Return(asset, nil)

			err := service.DeleteAsset(ctx, condominiumID, asset.ID)
			Expect(err).To(MatchError(usecases.ErrAssetSoftDeleted))
		})
	})

	Describe("UpdateAsset", func() {
		It("keeps the compliance status untouched", func() {
			Expect(asset.SetComplianceStatus(domain.ComplianceAtencao)).To(Succeed())
			repository.EXPECT().GetByID(ctx, condominiumID, asset.ID).Return(asset, nil)
			repository.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, updated domain.Asset) error {
					Expect(updated.Name).To(Equal("Elevador de Servico"))
					Expect(updated.ComplianceStatus).To(Equal(domain.ComplianceAtencao))
					return nil
				})

			changed := asset
			changed.Name = "Elevador de Servico"
			Expect(service.UpdateAsset(ctx, changed)).To(Succeed())
		})
	})
})
