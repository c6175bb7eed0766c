package usecases_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"predial-server/internal/infra/async"
	"predial-server/internal/maintenance/domain"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	pubsubmocks "predial-server/test/unit/doubles/infra/pubsub"
	mocks "predial-server/test/unit/doubles/maintenance/usecases"
)

var _ = Describe("SimpleWorkOrderService", func() {
	var (
		ctrl       *gomock.Controller
		repository *mocks.MockWorkOrderRepository
		plans      *mocks.MockPlanRepository
		assets     *mocks.MockAssetProvider
		users      *mocks.MockUserResolver
		broker     *async.LocalBroker
		publisher  *pubsubmocks.MockPublisher
		service    *usecases.SimpleWorkOrderService
		ctx        context.Context

		condominiumID = shareddomain.ID("cond-1")
		assetID       = shareddomain.ID("ativo-1")
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		repository = mocks.NewMockWorkOrderRepository(ctrl)
		plans = mocks.NewMockPlanRepository(ctrl)
		assets = mocks.NewMockAssetProvider(ctrl)
		users = mocks.NewMockUserResolver(ctrl)
		broker = async.NewLocalBroker()
		publisher = pubsubmocks.NewMockPublisher(ctrl)
		factory := pubsubmocks.NewMockPublisherFactory(ctrl)
		factory.EXPECT().New(usecases.WorkOrdersStream, gomock.Any()).Return(publisher, nil)

		var err error
		service, err = usecases.NewWorkOrderService(repository, plans, assets, users, broker, factory)
		Expect(err).ToNot(HaveOccurred())

		ctx = context.Background()
	})

	AfterEach(func() {
		broker.Stop()
		ctrl.Finish()
	})

	buildWorkOrder := func() domain.WorkOrder {
		wo, err := domain.NewWorkOrderBuilder().
			WithCondominiumID(condominiumID).
			WithAssetID(assetID).
			WithTitle("Troca de cabo de tracao").
			WithType(domain.TypeCorretiva).
			WithPriority(domain.PriorityUrgente).
			WithExecutor(domain.ExecutorExterno, "Elevadores Atlas", "atlas@example.com").
			Build()
		Expect(err).ToNot(HaveOccurred())
		return wo
	}

	Describe("CreateWorkOrder", func() {
		It("allocates the number together with the opening log entry", func() {
			wo := buildWorkOrder()

			assets.EXPECT().GetAsset(ctx, condominiumID, assetID).
				Return(usecases.AssetInfo{ID: assetID, CondominiumID: condominiumID}, nil)
			repository.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, workOrder *domain.WorkOrder, entry domain.WorkOrderLogEntry) error {
					Expect(entry.WorkOrderID).To(Equal(workOrder.ID))
					Expect(entry.FromStatus).To(BeNil())
					Expect(entry.ToStatus).To(Equal(domain.StatusAberta))
					workOrder.Number = "OS-2025-0001"
					return nil
				})
			publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).Return(nil)

			created, err := service.CreateWorkOrder(ctx, wo, "sindico@example.com")
			Expect(err).ToNot(HaveOccurred())
			Expect(created.Number).To(MatchRegexp(`^OS-\d{4}-\d{4}$`))
		})

		It("snapshots checklist and references from the linked plan", func() {
			planID := shareddomain.ID("plano-1")
			wo := buildWorkOrder()
			wo.PlanID = &planID

			assets.EXPECT().GetAsset(ctx, condominiumID, assetID).
				Return(usecases.AssetInfo{ID: assetID, CondominiumID: condominiumID}, nil)
			plans.EXPECT().GetByID(ctx, planID).Return(domain.MaintenancePlan{
				ID:              planID,
				CondominiumID:   condominiumID,
				AssetID:         assetID,
				RequirementCode: "NBR 16083",
				NBRReferences:   []string{"NBR 16083"},
				Checklist: []domain.ChecklistItem{
					{Description: "Testar freio de emergencia", Mandatory: true},
				},
			}, nil)
			repository.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, workOrder *domain.WorkOrder, _ domain.WorkOrderLogEntry) error {
					Expect(workOrder.NBRReferences).To(ConsistOf("NBR 16083"))
					Expect(workOrder.ChecklistSnapshot).To(HaveLen(1))
					return nil
				})
			publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).Return(nil)

			_, err := service.CreateWorkOrder(ctx, wo, "sindico@example.com")
			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects plans from another condominium", func() {
			planID := shareddomain.ID("plano-1")
			wo := buildWorkOrder()
			wo.PlanID = &planID

			assets.EXPECT().GetAsset(ctx, condominiumID, assetID).
				Return(usecases.AssetInfo{ID: assetID, CondominiumID: condominiumID}, nil)
			plans.EXPECT().GetByID(ctx, planID).Return(domain.MaintenancePlan{
				ID:            planID,
				CondominiumID: "cond-2",
				AssetID:       assetID,
			}, nil)

			_, err := service.CreateWorkOrder(ctx, wo, "sindico@example.com")
			Expect(err).To(MatchError(usecases.ErrPlanTenantMismatch))
		})

		It("rejects unknown internal responsibles", func() {
			responsible := shareddomain.ID("user-ghost")
			wo, err := domain.NewWorkOrderBuilder().
				WithCondominiumID(condominiumID).
				WithAssetID(assetID).
				WithTitle("Inspecao da bomba").
				WithType(domain.TypePreventiva).
				WithPriority(domain.PriorityMedia).
				WithExecutor(domain.ExecutorInterno, "", "").
				WithResponsibleUserID(&responsible).
				Build()
			Expect(err).ToNot(HaveOccurred())

			assets.EXPECT().GetAsset(ctx, condominiumID, assetID).
				Return(usecases.AssetInfo{ID: assetID, CondominiumID: condominiumID}, nil)
			users.EXPECT().UserExists(ctx, condominiumID, responsible).Return(false, nil)

			_, err = service.CreateWorkOrder(ctx, wo, "sindico@example.com")
			Expect(err).To(MatchError(usecases.ErrResponsibleUserNotFound))
		})
	})

	Describe("TransitionWorkOrder", func() {
		It("advances the linked plan on completion", func() {
			planID := shareddomain.ID("plano-1")
			wo := buildWorkOrder()
			wo.PlanID = &planID
			wo.Status = domain.StatusEmAndamento
			plan, err := domain.NewPlanBuilder().
				WithCondominiumID(condominiumID).
				WithAssetID(assetID).
				WithRequirementCode("NBR 16083").
				WithTitle("Manutencao mensal de elevadores").
				WithPeriodicity(domain.Periodicity{Days: 30}).
				Build()
			Expect(err).ToNot(HaveOccurred())
			originalDue := plan.NextDueAt

			repository.EXPECT().GetByID(ctx, wo.ID).Return(wo, nil)
			plans.EXPECT().GetByID(ctx, planID).Return(plan, nil)
			repository.EXPECT().UpdateWithLog(ctx, gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, updated domain.WorkOrder, entry domain.WorkOrderLogEntry, advanced *domain.MaintenancePlan) error {
					Expect(updated.Status).To(Equal(domain.StatusConcluida))
					Expect(updated.CompletedAt).ToNot(BeNil())
					Expect(entry.ToStatus).To(Equal(domain.StatusConcluida))
					Expect(advanced).ToNot(BeNil())
					Expect(advanced.LastExecutedAt).ToNot(BeNil())
					Expect(advanced.NextDueAt.Before(originalDue)).To(BeFalse())
					return nil
				})
			publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).Return(nil)

			_, err = service.TransitionWorkOrder(ctx, wo.ID, domain.StatusConcluida, "zelador@example.com", "executado")
			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects invalid transitions without writing", func() {
			wo := buildWorkOrder()
			wo.Status = domain.StatusConcluida

			repository.EXPECT().GetByID(ctx, wo.ID).Return(wo, nil)

			_, err := service.TransitionWorkOrder(ctx, wo.ID, domain.StatusEmAndamento, "sindico@example.com", "")
			Expect(err).To(MatchError(domain.ErrInvalidTransition))
		})

		It("does not touch plans on cancellation", func() {
			planID := shareddomain.ID("plano-1")
			wo := buildWorkOrder()
			wo.PlanID = &planID

			repository.EXPECT().GetByID(ctx, wo.ID).Return(wo, nil)
			repository.EXPECT().UpdateWithLog(ctx, gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil)
			publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).Return(nil)

			_, err := service.TransitionWorkOrder(ctx, wo.ID, domain.StatusCancelada, "sindico@example.com", "duplicada")
			Expect(err).ToNot(HaveOccurred())
		})

		It("streams the status change to internal subscribers", func() {
			subscription, err := broker.Subscribe(usecases.WorkOrderEventsTopic)
			Expect(err).ToNot(HaveOccurred())

			wo := buildWorkOrder()
			repository.EXPECT().GetByID(ctx, wo.ID).Return(wo, nil)
			repository.EXPECT().UpdateWithLog(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			publisher.EXPECT().Publish(ctx, gomock.Any(), gomock.Any()).Return(nil)

			_, err = service.TransitionWorkOrder(ctx, wo.ID, domain.StatusEmAndamento, "zelador@example.com", "")
			Expect(err).ToNot(HaveOccurred())

			var received async.BrokerMessage
			Eventually(subscription.Receiver).Should(Receive(&received))
			Expect(received.Event).To(Equal(usecases.EventWorkOrderStatusChanged))

			event, ok := received.Value.(usecases.WorkOrderEvent)
			Expect(ok).To(BeTrue())
			Expect(event.ToStatus).To(Equal(string(domain.StatusEmAndamento)))
		})
	})
})
