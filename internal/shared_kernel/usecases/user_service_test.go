package usecases_test

import (
	"context"

	"predial-server/internal/shared_kernel/domain"
	"predial-server/internal/shared_kernel/usecases"
	usecases_mocks "predial-server/test/unit/doubles/shared_kernel/usecases"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("UserService", func() {
	var (
		ctrl                   *gomock.Controller
		mockRepository         *usecases_mocks.MockUserRepository
		mockCondominiumService *usecases_mocks.MockCondominiumService
		service                *usecases.SimpleUserService
		ctx                    context.Context
		condominium            domain.Condominium
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockRepository = usecases_mocks.NewMockUserRepository(ctrl)
		mockCondominiumService = usecases_mocks.NewMockCondominiumService(ctrl)
		service = usecases.NewUserService(mockRepository, mockCondominiumService)
		ctx = context.Background()
		condominium = domain.Condominium{ID: "cond-1", Name: "Edificio Aurora", IsActive: true}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("CreateUser", func() {
		var user domain.User

		BeforeEach(func() {
			user, _ = domain.NewUserBuilder().
				WithCondominiumID("cond-1").
				WithName("Maria Silva").
				WithEmail("maria@aurora.com.br").
				WithRole(domain.UserRoleSindico).
				Build()
		})

		When("the email is unused in the condominium", func() {
			It("should create the user", func() {
				mockCondominiumService.EXPECT().
					GetCondominium(ctx, domain.ID("cond-1")).
					Return(condominium, nil)
				mockRepository.EXPECT().
					GetByEmail(ctx, domain.ID("cond-1"), "maria@aurora.com.br").
					Return(domain.User{}, usecases.ErrUserNotFound)
				mockRepository.EXPECT().
					Create(ctx, user).
					Return(nil)

				err := service.CreateUser(ctx, user)

				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the email is already registered", func() {
			It("should return a duplicated error", func() {
				mockCondominiumService.EXPECT().
					GetCondominium(ctx, domain.ID("cond-1")).
					Return(condominium, nil)
				mockRepository.EXPECT().
					GetByEmail(ctx, domain.ID("cond-1"), "maria@aurora.com.br").
					Return(domain.User{ID: "user-9"}, nil)

				err := service.CreateUser(ctx, user)

				Expect(err).To(MatchError(usecases.ErrUserDuplicated))
			})
		})

		When("the email is malformed", func() {
			It("should reject before touching the repository", func() {
				user.Email = "not-an-email"

				err := service.CreateUser(ctx, user)

				Expect(err).To(MatchError(usecases.ErrInvalidUserEmail))
			})
		})

		When("the condominium is missing", func() {
			It("should return not found", func() {
				mockCondominiumService.EXPECT().
					GetCondominium(ctx, domain.ID("cond-1")).
					Return(domain.Condominium{}, usecases.ErrCondominiumNotFound)

				err := service.CreateUser(ctx, user)

				Expect(err).To(MatchError(usecases.ErrCondominiumNotFound))
			})
		})
	})

	Context("Builder role validation", func() {
		When("the role is unknown", func() {
			It("should fail to build", func() {
				_, err := domain.NewUserBuilder().
					WithCondominiumID("cond-1").
					WithName("Maria Silva").
					WithEmail("maria@aurora.com.br").
					WithRole(domain.UserRole("porteiro")).
					Build()

				Expect(err).To(MatchError(domain.ErrInvalidUserRole))
			})
		})
	})
})
