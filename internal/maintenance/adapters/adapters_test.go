package adapters_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	assetdomain "predial-server/internal/assets/domain"
	assetusecases "predial-server/internal/assets/usecases"
	catalogdomain "predial-server/internal/catalog/domain"
	"predial-server/internal/infra/utils"
	"predial-server/internal/maintenance/adapters"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
	assetmocks "predial-server/test/unit/doubles/assets/usecases"
	catalogmocks "predial-server/test/unit/doubles/catalog/usecases"
	sharedmocks "predial-server/test/unit/doubles/shared_kernel/usecases"
)

var _ = Describe("AssetProviderAdapter", func() {
	var (
		ctrl     *gomock.Controller
		assets   *assetmocks.MockAssetRepository
		provider *adapters.AssetProviderAdapter
		ctx      context.Context

		condominiumID = shareddomain.ID("cond-1")
		assetID       = shareddomain.ID("ativo-1")
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		assets = assetmocks.NewMockAssetRepository(ctrl)
		provider = adapters.NewAssetProvider(assets)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("projects the registry asset into the engine's view", func() {
		assets.EXPECT().GetByID(ctx, condominiumID, assetID).Return(assetdomain.Asset{
			ID:            assetID,
			CondominiumID: condominiumID,
			AssetTypeSlug: "tipo-elevador",
			Name:          "Elevador Social Torre A",
		}, nil)

		info, err := provider.GetAsset(ctx, condominiumID, assetID)
		Expect(err).ToNot(HaveOccurred())
		Expect(info.AssetTypeSlug).To(Equal("tipo-elevador"))
		Expect(info.Name).To(Equal("Elevador Social Torre A"))
	})

	It("translates missing and soft deleted assets to a single not found", func() {
		assets.EXPECT().GetByID(ctx, condominiumID, assetID).
			Return(assetdomain.Asset{}, assetusecases.ErrAssetNotFound)
		_, err := provider.GetAsset(ctx, condominiumID, assetID)
		Expect(err).To(MatchError(usecases.ErrAssetNotFound))

		assets.EXPECT().GetByID(ctx, condominiumID, assetID).
			Return(assetdomain.Asset{ID: assetID, CondominiumID: condominiumID, DeletedAt: utils.Ptr(time.Now())}, nil)
		_, err = provider.GetAsset(ctx, condominiumID, assetID)
		Expect(err).To(MatchError(usecases.ErrAssetNotFound))
	})
})

var _ = Describe("CatalogProviderAdapter", func() {
	var (
		ctrl     *gomock.Controller
		catalog  *catalogmocks.MockCatalogService
		provider *adapters.CatalogProviderAdapter
		ctx      context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		catalog = catalogmocks.NewMockCatalogService(ctrl)
		provider = adapters.NewCatalogProvider(catalog)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("carries the compliance flag through", func() {
		catalog.EXPECT().GetAssetTypeBySlug(ctx, "tipo-piscina").Return(catalogdomain.AssetType{
			Slug:               "tipo-piscina",
			Name:               "Piscina",
			RequiresCompliance: false,
		}, nil)

		info, err := provider.GetAssetType(ctx, "tipo-piscina")
		Expect(err).ToNot(HaveOccurred())
		Expect(info.RequiresCompliance).To(BeFalse())
	})

	It("converts requirement checklists item by item", func() {
		catalog.EXPECT().ListRequirementsForType(ctx, "tipo-elevador").Return([]catalogdomain.ComplianceRequirement{
			{
				Code:            "NBR 16083",
				Title:           "Manutencao mensal de elevadores",
				Periodicity:     "30d",
				ResponsibleRole: "terceirizado",
				IsLegal:         true,
				Checklist: []catalogdomain.ChecklistItem{
					{Description: "Testar freio de emergencia", Mandatory: true},
					{Description: "Limpar casa de maquinas", Mandatory: false},
				},
			},
		}, nil)

		requirements, err := provider.ListRequirements(ctx, "tipo-elevador")
		Expect(err).ToNot(HaveOccurred())
		Expect(requirements).To(HaveLen(1))
		Expect(requirements[0].Checklist).To(HaveLen(2))
		Expect(requirements[0].Checklist[0].Mandatory).To(BeTrue())
		Expect(requirements[0].Checklist[0].Done).To(BeFalse())
	})
})

var _ = Describe("UserResolverAdapter", func() {
	var (
		ctrl     *gomock.Controller
		users    *sharedmocks.MockUserService
		resolver *adapters.UserResolverAdapter
		ctx      context.Context

		condominiumID = shareddomain.ID("cond-1")
		userID        = shareddomain.ID("user-1")
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		users = sharedmocks.NewMockUserService(ctrl)
		resolver = adapters.NewUserResolver(users)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("accepts active users of the same condominium", func() {
		users.EXPECT().GetUser(ctx, userID).Return(shareddomain.User{
			ID:            userID,
			CondominiumID: condominiumID,
			IsActive:      true,
		}, nil)

		exists, err := resolver.UserExists(ctx, condominiumID, userID)
		Expect(err).ToNot(HaveOccurred())
		Expect(exists).To(BeTrue())
	})

	It("rejects users from another condominium", func() {
		users.EXPECT().GetUser(ctx, userID).Return(shareddomain.User{
			ID:            userID,
			CondominiumID: "cond-2",
			IsActive:      true,
		}, nil)

		exists, err := resolver.UserExists(ctx, condominiumID, userID)
		Expect(err).ToNot(HaveOccurred())
		Expect(exists).To(BeFalse())
	})

	It("treats unknown users as absent without failing", func() {
		users.EXPECT().GetUser(ctx, userID).
			Return(shareddomain.User{}, sharedusecases.ErrUserNotFound)

		exists, err := resolver.UserExists(ctx, condominiumID, userID)
		Expect(err).ToNot(HaveOccurred())
		Expect(exists).To(BeFalse())
	})
})
