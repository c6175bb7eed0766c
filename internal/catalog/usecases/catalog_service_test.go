package usecases_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"predial-server/internal/catalog/domain"
	"predial-server/internal/catalog/usecases"
	mocks "predial-server/test/unit/doubles/catalog/usecases"
)

var _ = Describe("SimpleCatalogService", func() {
	var (
		ctrl         *gomock.Controller
		assetTypes   *mocks.MockAssetTypeRepository
		requirements *mocks.MockRequirementRepository
		service      *usecases.SimpleCatalogService
		ctx          context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		assetTypes = mocks.NewMockAssetTypeRepository(ctrl)
		requirements = mocks.NewMockRequirementRepository(ctrl)
		service = usecases.NewCatalogService(assetTypes, requirements)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("ListAssetTypes", func() {
		It("returns the catalog entries", func() {
			assetTypes.EXPECT().FindAll(ctx).Return([]domain.AssetType{
				{Slug: "elevador", Name: "Elevador"},
				{Slug: "extintor", Name: "Extintor"},
			}, nil)

			result, err := service.ListAssetTypes(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(2))
			Expect(result[0].Slug).To(Equal("elevador"))
		})

		It("wraps repository errors", func() {
			assetTypes.EXPECT().FindAll(ctx).Return(nil, errors.New("connection refused"))

			_, err := service.ListAssetTypes(ctx)
			Expect(err).To(MatchError(ContainSubstring("listing asset types")))
		})
	})

	Describe("GetAssetTypeBySlug", func() {
		It("returns not found untouched", func() {
			assetTypes.EXPECT().GetBySlug(ctx, "escada-rolante").Return(domain.AssetType{}, usecases.ErrAssetTypeNotFound)

			_, err := service.GetAssetTypeBySlug(ctx, "escada-rolante")
			Expect(err).To(MatchError(usecases.ErrAssetTypeNotFound))
		})
	})

	Describe("ListRequirementsForType", func() {
		It("validates the asset type before listing", func() {
			assetTypes.EXPECT().GetBySlug(ctx, "elevador").Return(domain.AssetType{Slug: "elevador"}, nil)
			requirements.EXPECT().FindByAssetTypeSlug(ctx, "elevador").Return([]domain.ComplianceRequirement{
				{Code: "NBR 16083", Periodicity: "30d"},
			}, nil)

			result, err := service.ListRequirementsForType(ctx, "elevador")
			Expect(err).ToNot(HaveOccurred())
			Expect(result).To(HaveLen(1))
			Expect(result[0].Code).To(Equal("NBR 16083"))
		})

		It("fails when the asset type does not exist", func() {
			assetTypes.EXPECT().GetBySlug(ctx, "escada-rolante").Return(domain.AssetType{}, usecases.ErrAssetTypeNotFound)

			_, err := service.ListRequirementsForType(ctx, "escada-rolante")
			Expect(err).To(MatchError(usecases.ErrAssetTypeNotFound))
		})
	})

	Describe("Seed", func() {
		It("upserts every built-in asset type and requirement", func() {
			assetTypes.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).AnyTimes()
			requirements.EXPECT().Upsert(ctx, gomock.Any()).Return(nil).AnyTimes()

			Expect(service.Seed(ctx)).To(Succeed())
		})

		It("stops on the first upsert failure", func() {
			assetTypes.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("disk full"))

			err := service.Seed(ctx)
			Expect(err).To(MatchError(ContainSubstring("seeding asset type")))
		})
	})
})
