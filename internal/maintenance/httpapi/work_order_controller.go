package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"predial-server/internal/infra/httpserver"
	"predial-server/internal/maintenance/domain"
	"predial-server/internal/maintenance/httpapi/internal"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

const (
	createWorkOrderErrMessage      = "failed to create work order"
	getWorkOrderErrMessage         = "failed to get work order"
	listWorkOrdersErrMessage       = "failed to list work orders"
	transitionWorkOrderErrMessage  = "failed to update work order status"
	getWorkOrderLogsErrMessage     = "failed to get work order history"
	workOrderNotFoundErrMessage    = "work order not found"
	workOrderAssetErrMessage       = "asset not found"
	workOrderPlanErrMessage        = "maintenance plan not found"
	workOrderPlanMismatchMessage   = "plan does not match the work order"
	workOrderResponsibleErrMessage = "responsible user not found"
	invalidTransitionErrMessage    = "invalid status transition"

	// defaultActor is used when the gateway sends no identity headers.
	defaultActor = "sistema"
)

var validate = validator.New()

func NewWorkOrderController(service usecases.WorkOrderService) *WorkOrderController {
	return &WorkOrderController{
		service: service,
	}
}

var _ httpserver.Controller = &WorkOrderController{}

type WorkOrderController struct {
	service usecases.WorkOrderService
}

func (c *WorkOrderController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/condominios/{id}/os", c.listWorkOrders())
	router.Handle("POST /v1/condominios/{id}/os", c.createWorkOrder())
	router.Handle("GET /v1/os/{id}", c.getWorkOrder())
	router.Handle("PATCH /v1/os/{id}/status", c.transitionWorkOrder())
	router.Handle("GET /v1/os/{id}/logs", c.getWorkOrderLogs())
}

func actorFromRequest(r *http.Request) string {
	if email := r.Header.Get("X-User-Email"); email != "" {
		return email
	}
	if name := r.Header.Get("X-User-Name"); name != "" {
		return name
	}
	return defaultActor
}

func (c *WorkOrderController) createWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		if condominiumID == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		var body internal.WorkOrderCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create work order request", slog.String("error", err.Error()))
			http.Error(w, createWorkOrderErrMessage, http.StatusBadRequest)
			return
		}

		if err := validate.Struct(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		builder := domain.NewWorkOrderBuilder().
			WithCondominiumID(shareddomain.ID(condominiumID)).
			WithAssetID(shareddomain.ID(body.AssetID)).
			WithTitle(body.Title).
			WithDescription(body.Description).
			WithType(domain.WorkOrderType(body.Type)).
			WithPriority(domain.Priority(body.Priority)).
			WithExecutor(domain.ExecutorKind(body.ExecutorKind), body.ExecutorName, body.ExecutorContact).
			WithScheduledAt(body.ScheduledAt)

		if body.ResponsibleUserID != nil {
			id := shareddomain.ID(*body.ResponsibleUserID)
			builder = builder.WithResponsibleUserID(&id)
		}
		if body.PlanID != nil {
			id := shareddomain.ID(*body.PlanID)
			builder = builder.WithPlanID(&id)
		}
		if body.NBRReferences != nil {
			builder = builder.WithNBRReferences(body.NBRReferences)
		}
		if body.ChecklistItems != nil {
			builder = builder.WithChecklistSnapshot(body.Checklist())
		}
		if body.Cost != nil {
			builder = builder.WithCost(*body.Cost)
		} else {
			builder = builder.WithCost(decimal.Zero)
		}

		workOrder, err := builder.Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		created, err := c.service.CreateWorkOrder(r.Context(), workOrder, actorFromRequest(r))
		switch {
		case errors.Is(err, usecases.ErrAssetNotFound):
			http.Error(w, workOrderAssetErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, usecases.ErrPlanNotFound):
			http.Error(w, workOrderPlanErrMessage, http.StatusBadRequest)
			return
		case errors.Is(err, usecases.ErrPlanTenantMismatch), errors.Is(err, usecases.ErrPlanAssetMismatch):
			http.Error(w, workOrderPlanMismatchMessage, http.StatusBadRequest)
			return
		case errors.Is(err, usecases.ErrResponsibleUserNotFound):
			http.Error(w, workOrderResponsibleErrMessage, http.StatusBadRequest)
			return
		case err != nil:
			slog.Error("creating work order", slog.String("error", err.Error()))
			http.Error(w, createWorkOrderErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToWorkOrderResponse(created))
	}
}

func (c *WorkOrderController) transitionWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workOrderID := r.PathValue("id")
		if workOrderID == "" {
			http.Error(w, "work order id is required", http.StatusBadRequest)
			return
		}

		var body internal.WorkOrderTransitionRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding transition request", slog.String("error", err.Error()))
			http.Error(w, transitionWorkOrderErrMessage, http.StatusBadRequest)
			return
		}

		if err := validate.Struct(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		updated, err := c.service.TransitionWorkOrder(
			r.Context(),
			shareddomain.ID(workOrderID),
			domain.Status(body.Status),
			actorFromRequest(r),
			body.Note,
		)
		switch {
		case errors.Is(err, usecases.ErrWorkOrderNotFound):
			http.Error(w, workOrderNotFoundErrMessage, http.StatusNotFound)
			return
		case errors.Is(err, domain.ErrInvalidStatus):
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		case errors.Is(err, domain.ErrInvalidTransition):
			http.Error(w, invalidTransitionErrMessage, http.StatusConflict)
			return
		case err != nil:
			slog.Error("transitioning work order", slog.String("error", err.Error()))
			http.Error(w, transitionWorkOrderErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToWorkOrderResponse(updated))
	}
}

func (c *WorkOrderController) getWorkOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workOrderID := r.PathValue("id")
		if workOrderID == "" {
			http.Error(w, "work order id is required", http.StatusBadRequest)
			return
		}

		workOrder, err := c.service.GetWorkOrder(r.Context(), shareddomain.ID(workOrderID))
		if errors.Is(err, usecases.ErrWorkOrderNotFound) {
			http.Error(w, workOrderNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting work order", slog.String("error", err.Error()))
			http.Error(w, getWorkOrderErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToWorkOrderResponse(workOrder))
	}
}

func (c *WorkOrderController) getWorkOrderLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workOrderID := r.PathValue("id")
		if workOrderID == "" {
			http.Error(w, "work order id is required", http.StatusBadRequest)
			return
		}

		logs, err := c.service.GetWorkOrderLogs(r.Context(), shareddomain.ID(workOrderID))
		if errors.Is(err, usecases.ErrWorkOrderNotFound) {
			http.Error(w, workOrderNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting work order logs", slog.String("error", err.Error()))
			http.Error(w, getWorkOrderLogsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.WorkOrderLogResponse, len(logs))
		for i, entry := range logs {
			responses[i] = internal.ToWorkOrderLogResponse(entry)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *WorkOrderController) listWorkOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		if condominiumID == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		filter := usecases.WorkOrderFilter{
			Status: r.URL.Query().Get("status"),
			Type:   r.URL.Query().Get("tipo"),
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := sharedusecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		workOrders, total, err := c.service.ListWorkOrders(r.Context(), shareddomain.ID(condominiumID), filter, pagination)
		if err != nil {
			slog.Error("listing work orders", slog.String("error", err.Error()))
			http.Error(w, listWorkOrdersErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.WorkOrderResponse, len(workOrders))
		for i, workOrder := range workOrders {
			responses[i] = internal.ToWorkOrderResponse(workOrder)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}
