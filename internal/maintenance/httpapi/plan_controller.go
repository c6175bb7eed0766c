package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"predial-server/internal/infra/httpserver"
	"predial-server/internal/maintenance/httpapi/internal"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

const (
	getPlanErrMessage      = "failed to get maintenance plan"
	listPlansErrMessage    = "failed to list maintenance plans"
	planNotFoundErrMessage = "maintenance plan not found"
)

func NewPlanController(service usecases.PlanService) *PlanController {
	return &PlanController{
		service: service,
	}
}

var _ httpserver.Controller = &PlanController{}

type PlanController struct {
	service usecases.PlanService
}

func (c *PlanController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/condominios/{id}/planos", c.listPlans())
	router.Handle("GET /v1/planos/{id}", c.getPlan())
}

func (c *PlanController) listPlans() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		if condominiumID == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := sharedusecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		plans, total, err := c.service.ListPlans(r.Context(), shareddomain.ID(condominiumID), pagination)
		if err != nil {
			slog.Error("listing plans", slog.String("error", err.Error()))
			http.Error(w, listPlansErrMessage, http.StatusInternalServerError)
			return
		}

		now := time.Now()
		responses := make([]internal.PlanResponse, len(plans))
		for i, plan := range plans {
			responses[i] = internal.ToPlanResponse(plan, now)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *PlanController) getPlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		planID := r.PathValue("id")
		if planID == "" {
			http.Error(w, "plan id is required", http.StatusBadRequest)
			return
		}

		plan, err := c.service.GetPlan(r.Context(), shareddomain.ID(planID))
		if errors.Is(err, usecases.ErrPlanNotFound) {
			http.Error(w, planNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting plan", slog.String("error", err.Error()))
			http.Error(w, getPlanErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToPlanResponse(plan, time.Now()))
	}
}
