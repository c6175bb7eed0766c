package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"predial-server/internal/infra/async"
	"predial-server/internal/infra/pubsub"
	"predial-server/internal/infra/utils"
	"predial-server/internal/maintenance/domain"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

//go:generate mockgen -source=work_order_service.go -destination=../../../test/unit/doubles/maintenance/usecases/work_order_service_mock.go -package=usecases -mock_names=WorkOrderService=MockWorkOrderService

type WorkOrderService interface {
	CreateWorkOrder(ctx context.Context, workOrder domain.WorkOrder, actor string) (domain.WorkOrder, error)
	TransitionWorkOrder(ctx context.Context, id shareddomain.ID, newStatus domain.Status, actor, note string) (domain.WorkOrder, error)
	GetWorkOrder(ctx context.Context, id shareddomain.ID) (domain.WorkOrder, error)
	GetWorkOrderLogs(ctx context.Context, id shareddomain.ID) ([]domain.WorkOrderLogEntry, error)
	ListWorkOrders(ctx context.Context, condominiumID shareddomain.ID, filter WorkOrderFilter, pagination sharedusecases.Pagination) ([]domain.WorkOrder, int, error)
}

func NewWorkOrderService(
	repository WorkOrderRepository,
	plans PlanRepository,
	assets AssetProvider,
	users UserResolver,
	internalBroker async.InternalBroker,
	publisherFactory pubsub.PublisherFactory,
) (*SimpleWorkOrderService, error) {
	publisher, err := publisherFactory.New(WorkOrdersStream, &WorkOrderEvent{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	return &SimpleWorkOrderService{
		repository:     repository,
		plans:          plans,
		assets:         assets,
		users:          users,
		internalBroker: internalBroker,
		publisher:      publisher,
	}, nil
}

var _ WorkOrderService = &SimpleWorkOrderService{}

type SimpleWorkOrderService struct {
	repository     WorkOrderRepository
	plans          PlanRepository
	assets         AssetProvider
	users          UserResolver
	internalBroker async.InternalBroker
	publisher      pubsub.Publisher
}

// CreateWorkOrder validates the request, snapshots plan data when a plan is
// linked, and inserts the order with its number and opening log entry in one
// transaction.
func (s *SimpleWorkOrderService) CreateWorkOrder(ctx context.Context, workOrder domain.WorkOrder, actor string) (domain.WorkOrder, error) {
	if _, err := s.assets.GetAsset(ctx, workOrder.CondominiumID, workOrder.AssetID); err != nil {
		return domain.WorkOrder{}, fmt.Errorf("getting asset: %w", err)
	}

	if workOrder.ExecutorKind == domain.ExecutorInterno && workOrder.ResponsibleUserID != nil {
		exists, err := s.users.UserExists(ctx, workOrder.CondominiumID, *workOrder.ResponsibleUserID)
		if err != nil {
			return domain.WorkOrder{}, fmt.Errorf("resolving responsible user: %w", err)
		}
		if !exists {
			return domain.WorkOrder{}, ErrResponsibleUserNotFound
		}
	}

	if workOrder.PlanID != nil {
		plan, err := s.plans.GetByID(ctx, *workOrder.PlanID)
		if err != nil {
			return domain.WorkOrder{}, fmt.Errorf("getting plan: %w", err)
		}
		if plan.CondominiumID != workOrder.CondominiumID {
			return domain.WorkOrder{}, ErrPlanTenantMismatch
		}
		if plan.AssetID != workOrder.AssetID {
			return domain.WorkOrder{}, ErrPlanAssetMismatch
		}

		// Snapshot: later plan edits must not alter this order.
		workOrder.NBRReferences = append([]string(nil), plan.NBRReferences...)
		workOrder.ChecklistSnapshot = append([]domain.ChecklistItem(nil), plan.Checklist...)
	}

	openingEntry := domain.NewOpeningLogEntry(workOrder.ID, actor)
	if err := s.repository.Create(ctx, &workOrder, openingEntry); err != nil {
		slog.Error("creating work order", slog.String("error", err.Error()))
		return domain.WorkOrder{}, err
	}

	slog.Info("work order created",
		slog.String("id", workOrder.ID.String()),
		slog.String("number", workOrder.Number),
		slog.String("condominium_id", workOrder.CondominiumID.String()))

	s.publishEvent(ctx, WorkOrderEvent{
		Event:         EventWorkOrderCreated,
		WorkOrderID:   workOrder.ID.String(),
		CondominiumID: workOrder.CondominiumID.String(),
		Number:        workOrder.Number,
		ToStatus:      string(workOrder.Status),
		Actor:         actor,
		OccurredAt:    utils.Time{Time: time.Now()},
	})

	return workOrder, nil
}

// TransitionWorkOrder validates the state machine, appends the log entry
// atomically, and on completion advances the linked plan.
func (s *SimpleWorkOrderService) TransitionWorkOrder(ctx context.Context, id shareddomain.ID, newStatus domain.Status, actor, note string) (domain.WorkOrder, error) {
	workOrder, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkOrderNotFound) {
			return domain.WorkOrder{}, ErrWorkOrderNotFound
		}
		return domain.WorkOrder{}, fmt.Errorf("getting work order: %w", err)
	}

	fromStatus := workOrder.Status
	if err := workOrder.TransitionTo(newStatus); err != nil {
		return domain.WorkOrder{}, err
	}

	var advancedPlan *domain.MaintenancePlan
	if newStatus == domain.StatusConcluida && workOrder.PlanID != nil {
		plan, err := s.plans.GetByID(ctx, *workOrder.PlanID)
		if err != nil {
			return domain.WorkOrder{}, fmt.Errorf("getting linked plan: %w", err)
		}

		plan.AdvanceExecution(*workOrder.CompletedAt)
		advancedPlan = &plan
	}

	entry := domain.NewTransitionLogEntry(workOrder.ID, actor, fromStatus, newStatus, note)
	if err := s.repository.UpdateWithLog(ctx, workOrder, entry, advancedPlan); err != nil {
		slog.Error("transitioning work order", slog.String("error", err.Error()))
		return domain.WorkOrder{}, fmt.Errorf("updating work order: %w", err)
	}

	slog.Info("work order transitioned",
		slog.String("id", workOrder.ID.String()),
		slog.String("from", string(fromStatus)),
		slog.String("to", string(newStatus)))

	s.publishEvent(ctx, WorkOrderEvent{
		Event:         EventWorkOrderStatusChanged,
		WorkOrderID:   workOrder.ID.String(),
		CondominiumID: workOrder.CondominiumID.String(),
		Number:        workOrder.Number,
		FromStatus:    string(fromStatus),
		ToStatus:      string(newStatus),
		Actor:         actor,
		OccurredAt:    utils.Time{Time: time.Now()},
	})

	return workOrder, nil
}

func (s *SimpleWorkOrderService) GetWorkOrder(ctx context.Context, id shareddomain.ID) (domain.WorkOrder, error) {
	workOrder, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrWorkOrderNotFound) {
			return domain.WorkOrder{}, ErrWorkOrderNotFound
		}
		slog.Error("getting work order", slog.String("error", err.Error()))
		return domain.WorkOrder{}, fmt.Errorf("getting work order: %w", err)
	}

	return workOrder, nil
}

func (s *SimpleWorkOrderService) GetWorkOrderLogs(ctx context.Context, id shareddomain.ID) ([]domain.WorkOrderLogEntry, error) {
	if _, err := s.GetWorkOrder(ctx, id); err != nil {
		return nil, err
	}

	logs, err := s.repository.FindLogs(ctx, id)
	if err != nil {
		slog.Error("getting work order logs", slog.String("error", err.Error()))
		return nil, fmt.Errorf("getting work order logs: %w", err)
	}

	return logs, nil
}

func (s *SimpleWorkOrderService) ListWorkOrders(ctx context.Context, condominiumID shareddomain.ID, filter WorkOrderFilter, pagination sharedusecases.Pagination) ([]domain.WorkOrder, int, error) {
	workOrders, total, err := s.repository.FindByCondominium(ctx, condominiumID, filter, pagination)
	if err != nil {
		slog.Error("listing work orders", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing work orders: %w", err)
	}

	return workOrders, total, nil
}

// publishEvent notifies both the in-process broker (websocket stream) and
// the external pubsub topic. Failures are logged, never propagated: the
// write already committed.
func (s *SimpleWorkOrderService) publishEvent(ctx context.Context, event WorkOrderEvent) {
	err := s.internalBroker.Publish(ctx, WorkOrderEventsTopic, async.BrokerMessage{
		Event: event.Event,
		Value: event,
	})
	if err != nil {
		slog.Warn("publishing internal event", slog.String("error", err.Error()))
	}

	if err := s.publisher.Publish(ctx, pubsub.Key(event.CondominiumID), &event); err != nil {
		slog.Warn("publishing work order event", slog.String("error", err.Error()))
	}
}
