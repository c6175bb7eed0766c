package usecases_test

import (
	"context"
	"errors"
	"time"

	"predial-server/internal/shared_kernel/domain"
	"predial-server/internal/shared_kernel/usecases"
	usecases_mocks "predial-server/test/unit/doubles/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("CondominiumService", func() {
	var (
		ctrl           *gomock.Controller
		mockRepository *usecases_mocks.MockCondominiumRepository
		service        *usecases.SimpleCondominiumService
		ctx            context.Context
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = usecases_mocks.NewMockCondominiumRepository(ctrl)
		service = usecases.NewCondominiumService(mockRepository)
		ctx = context.Background()
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("CreateCondominium", func() {
		var condominium domain.Condominium

		BeforeEach(func() {
			condominium, _ = domain.NewCondominiumBuilder().
				WithName("Edificio Aurora").
				WithEmail("sindico@aurora.com.br").
				Build()
		})

		When("the name is free", func() {
			It("should create the condominium", func() {
				mockRepository.EXPECT().
					GetByName(ctx, "Edificio Aurora").
					Return(domain.Condominium{}, usecases.ErrCondominiumNotFound)
				mockRepository.EXPECT().
					Create(ctx, condominium).
					Return(nil)

				err := service.CreateCondominium(ctx, condominium)

				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("a condominium with the same name exists", func() {
			It("should return a duplicated error", func() {
				existing := domain.Condominium{ID: "other-id", Name: "Edificio Aurora"}
				mockRepository.EXPECT().
					GetByName(ctx, "Edificio Aurora").
					Return(existing, nil)

				err := service.CreateCondominium(ctx, condominium)

				Expect(err).To(MatchError(usecases.ErrCondominiumDuplicated))
			})
		})

		When("the repository fails", func() {
			It("should wrap the error", func() {
				mockRepository.EXPECT().
					GetByName(ctx, "Edificio Aurora").
					Return(domain.Condominium{}, usecases.ErrCondominiumNotFound)
				mockRepository.EXPECT().
					Create(ctx, condominium).
					Return(errors.New("connection refused"))

				err := service.CreateCondominium(ctx, condominium)

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("creating condominium"))
			})
		})
	})

	Context("UpdateCondominium", func() {
		var existing domain.Condominium

		BeforeEach(func() {
			existing = domain.Condominium{
				ID:        "cond-1",
				Name:      "Edificio Aurora",
				Email:     "sindico@aurora.com.br",
				IsActive:  true,
				Version:   2,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
		})

		When("the version matches", func() {
			It("should update the condominium", func() {
				mockRepository.EXPECT().
					GetByID(ctx, domain.ID("cond-1")).
					Return(existing, nil)
				mockRepository.EXPECT().
					Update(ctx, gomock.Any()).
					Return(nil)

				err := service.UpdateCondominium(ctx, domain.Condominium{
					ID:      "cond-1",
					Email:   "novo@aurora.com.br",
					Version: 2,
				})

				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the version does not match", func() {
			It("should return a version conflict", func() {
				mockRepository.EXPECT().
					GetByID(ctx, domain.ID("cond-1")).
					Return(existing, nil)

				err := service.UpdateCondominium(ctx, domain.Condominium{
					ID:      "cond-1",
					Email:   "novo@aurora.com.br",
					Version: 1,
				})

				Expect(err).To(MatchError(usecases.ErrCondominiumVersionConflict))
			})
		})

		When("the condominium is soft deleted", func() {
			It("should refuse the update", func() {
				deletedAt := time.Now()
				existing.DeletedAt = &deletedAt
				mockRepository.EXPECT().
					GetByID(ctx, domain.ID("cond-1")).
					Return(existing, nil)

				err := service.UpdateCondominium(ctx, domain.Condominium{ID: "cond-1"})

				Expect(err).To(MatchError(usecases.ErrCondominiumSoftDeleted))
			})
		})
	})

	Context("SoftDeleteCondominium", func() {
		When("the condominium exists", func() {
			It("should mark it deleted and inactive", func() {
				existing := domain.Condominium{ID: "cond-1", Name: "Edificio Aurora", IsActive: true}
				mockRepository.EXPECT().
					GetByID(ctx, domain.ID("cond-1")).
					Return(existing, nil)
				mockRepository.EXPECT().
					Update(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, c domain.Condominium) error {
						Expect(c.DeletedAt).NotTo(BeNil())
						Expect(c.IsActive).To(BeFalse())
						return nil
					})

				err := service.SoftDeleteCondominium(ctx, "cond-1")

				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the condominium does not exist", func() {
			It("should return not found", func() {
				mockRepository.EXPECT().
					GetByID(ctx, domain.ID("missing")).
					Return(domain.Condominium{}, usecases.ErrCondominiumNotFound)

				err := service.SoftDeleteCondominium(ctx, "missing")

				Expect(err).To(MatchError(usecases.ErrCondominiumNotFound))
			})
		})
	})
})
