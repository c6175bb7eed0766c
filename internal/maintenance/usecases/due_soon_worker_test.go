package usecases_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"predial-server/internal/infra/notification"
	"predial-server/internal/maintenance/domain"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	notificationmocks "predial-server/test/unit/doubles/infra/notification"
	mocks "predial-server/test/unit/doubles/maintenance/usecases"
	sharedmocks "predial-server/test/unit/doubles/shared_kernel/usecases"
)

var _ = Describe("DueSoonWorker", func() {
	var (
		ctrl         *gomock.Controller
		plans        *mocks.MockPlanRepository
		condominiums *sharedmocks.MockCondominiumService
		notifier     *notificationmocks.MockNotificationClient
		worker       *usecases.DueSoonWorker
		cancelFn     context.CancelFunc

		condominiumID = shareddomain.ID("cond-1")
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		plans = mocks.NewMockPlanRepository(ctrl)
		condominiums = sharedmocks.NewMockCondominiumService(ctrl)
		notifier = notificationmocks.NewMockNotificationClient(ctrl)
		worker = usecases.NewDueSoonWorker(plans, condominiums, notifier, "@every 1s")
	})

	AfterEach(func() {
		if cancelFn != nil {
			cancelFn()
			cancelFn = nil
		}
		worker.Shutdown()
		ctrl.Finish()
	})

	It("emails a digest with overdue and imminent plans", func() {
		now := time.Now().UTC()
		duePlans := []domain.MaintenancePlan{
			{
				ID:              "plan-1",
				CondominiumID:   condominiumID,
				RequirementCode: "NBR 16083",
				Title:           "Manutencao mensal de elevadores",
				NextDueAt:       now.AddDate(0, 0, -3),
			},
			{
				ID:              "plan-2",
				CondominiumID:   condominiumID,
				RequirementCode: "NBR 5674",
				Title:           "Limpeza de reservatorio",
				NextDueAt:       now.AddDate(0, 0, 5),
			},
		}

		plans.EXPECT().FindDueWithin(gomock.Any(), 7).Return(duePlans, nil).AnyTimes()
		condominiums.EXPECT().GetCondominium(gomock.Any(), condominiumID).Return(shareddomain.Condominium{
			ID:       condominiumID,
			Name:     "Residencial Aurora",
			Email:    "sindico@aurora.com.br",
			IsActive: true,
		}, nil).AnyTimes()

		requests := make(chan notification.EmailRequest, 10)
		notifier.EXPECT().SendEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, request notification.EmailRequest) error {
				requests <- request
				return nil
			}).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		cancelFn = cancel
		go worker.Run(ctx, func() {})

		var request notification.EmailRequest
		Eventually(requests, "3s").Should(Receive(&request))
		Expect(request.To).To(Equal("sindico@aurora.com.br"))
		Expect(request.Subject).To(ContainSubstring("Residencial Aurora"))
		Expect(request.Body).To(ContainSubstring("[ATRASADO"))
		Expect(request.Body).To(ContainSubstring("[VENCE EM"))
		Expect(request.Body).To(ContainSubstring("NBR 16083"))
	})

	It("skips condominiums without an email address", func() {
		now := time.Now().UTC()
		plans.EXPECT().FindDueWithin(gomock.Any(), 7).Return([]domain.MaintenancePlan{
			{
				ID:            "plan-1",
				CondominiumID: condominiumID,
				Title:         "Recarga de extintores",
				NextDueAt:     now.AddDate(0, 0, 2),
			},
		}, nil).AnyTimes()
		condominiums.EXPECT().GetCondominium(gomock.Any(), condominiumID).Return(shareddomain.Condominium{
			ID:       condominiumID,
			Name:     "Residencial Sem Email",
			IsActive: true,
		}, nil).AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		cancelFn = cancel
		go worker.Run(ctx, func() {})

		// no SendEmail expectation is registered, so a send would fail
		time.Sleep(1500 * time.Millisecond)
	})
})
