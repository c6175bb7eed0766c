package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"predial-server/internal/infra/httpserver"
	"predial-server/internal/maintenance/httpapi/internal"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

const dashboardErrMessage = "failed to compute dashboard"

func NewDashboardController(service usecases.DashboardService) *DashboardController {
	return &DashboardController{
		service: service,
	}
}

var _ httpserver.Controller = &DashboardController{}

type DashboardController struct {
	service usecases.DashboardService
}

func (c *DashboardController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/condominios/{id}/dashboard", c.getDashboard())
}

func (c *DashboardController) getDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		if condominiumID == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		kpis, err := c.service.ComputeKPIs(r.Context(), shareddomain.ID(condominiumID), time.Now())
		if err != nil {
			slog.Error("computing dashboard", slog.String("error", err.Error()))
			http.Error(w, dashboardErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToDashboardResponse(kpis))
	}
}
