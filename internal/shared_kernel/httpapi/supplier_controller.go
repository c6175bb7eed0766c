package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"predial-server/internal/infra/httpserver"
	"predial-server/internal/shared_kernel/domain"
	"predial-server/internal/shared_kernel/httpapi/internal"
	"predial-server/internal/shared_kernel/usecases"
)

const (
	createSupplierErrMessage = "failed to create supplier"
	listSuppliersErrMessage  = "failed to list suppliers"
)

func NewSupplierController(service usecases.SupplierService) *SupplierController {
	return &SupplierController{
		service: service,
	}
}

var _ httpserver.Controller = &SupplierController{}

type SupplierController struct {
	service usecases.SupplierService
}

func (c *SupplierController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/condominios/{id}/fornecedores", c.listSuppliers())
	router.Handle("POST /v1/condominios/{id}/fornecedores", c.createSupplier())
}

func (c *SupplierController) listSuppliers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		if condominiumID == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		suppliers, total, err := c.service.ListSuppliers(r.Context(), domain.ID(condominiumID), pagination)
		if err != nil {
			slog.Error("listing suppliers", slog.String("error", err.Error()))
			http.Error(w, listSuppliersErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.SupplierResponse, len(suppliers))
		for i, supplier := range suppliers {
			responses[i] = internal.ToSupplierResponse(supplier)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *SupplierController) createSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		if condominiumID == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		var body internal.SupplierCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create supplier request", slog.String("error", err.Error()))
			http.Error(w, createSupplierErrMessage, http.StatusBadRequest)
			return
		}

		if err := validate.Struct(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		supplier, err := domain.NewSupplierBuilder().
			WithCondominiumID(domain.ID(condominiumID)).
			WithName(body.Name).
			WithEmail(body.Email).
			WithPhone(body.Phone).
			WithServiceKind(body.ServiceKind).
			Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateSupplier(r.Context(), supplier)
		if errors.Is(err, usecases.ErrCondominiumNotFound) {
			http.Error(w, condominiumNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrCondominiumSoftDeleted) {
			http.Error(w, condominiumSoftDeletedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("creating supplier", slog.String("error", err.Error()))
			http.Error(w, createSupplierErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToSupplierResponse(supplier)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}
