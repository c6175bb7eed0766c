package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"predial-server/internal/infra/httpserver"
	"predial-server/internal/shared_kernel/domain"
	"predial-server/internal/shared_kernel/httpapi/internal"
	"predial-server/internal/shared_kernel/usecases"

	"github.com/go-playground/validator/v10"
)

const (
	createCondominiumErrMessage          = "failed to create condominium"
	condominiumNotFoundErrMessage        = "condominium not found"
	condominiumDuplicatedErrMessage      = "condominium already exists"
	condominiumSoftDeletedErrMessage     = "condominium is soft deleted"
	condominiumVersionConflictErrMessage = "condominium version conflict"
	updateCondominiumErrMessage          = "failed to update condominium"
	softDeleteCondominiumErrMessage      = "failed to soft delete condominium"
	listCondominiumsErrMessage           = "failed to list condominiums"
	getCondominiumErrMessage             = "failed to get condominium"
)

var validate = validator.New()

func NewCondominiumController(service usecases.CondominiumService) *CondominiumController {
	return &CondominiumController{
		service: service,
	}
}

var _ httpserver.Controller = &CondominiumController{}

type CondominiumController struct {
	service usecases.CondominiumService
}

func (c *CondominiumController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/condominios", c.listCondominiums())
	router.Handle("POST /v1/condominios", c.createCondominium())
	router.Handle("GET /v1/condominios/{id}", c.getCondominium())
	router.Handle("PUT /v1/condominios/{id}", c.updateCondominium())
	router.Handle("DELETE /v1/condominios/{id}", c.softDeleteCondominium())
	router.Handle("POST /v1/condominios/{id}/activate", c.activateCondominium())
	router.Handle("POST /v1/condominios/{id}/deactivate", c.deactivateCondominium())
}

func (c *CondominiumController) listCondominiums() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		includeDeleted := false
		if r.URL.Query().Get("include_deleted") == "true" {
			includeDeleted = true
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		condominiums, total, err := c.service.ListCondominiums(r.Context(), includeDeleted, pagination)
		if err != nil {
			slog.Error("listing condominiums", slog.String("error", err.Error()))
			http.Error(w, listCondominiumsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.CondominiumResponse, len(condominiums))
		for i, condominium := range condominiums {
			responses[i] = internal.ToCondominiumResponse(condominium)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *CondominiumController) createCondominium() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.CondominiumCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create condominium request", slog.String("error", err.Error()))
			http.Error(w, createCondominiumErrMessage, http.StatusBadRequest)
			return
		}

		if err := validate.Struct(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		condominium, err := domain.NewCondominiumBuilder().
			WithName(body.Name).
			WithEmail(body.Email).
			WithDescription(body.Description).
			Build()
		if err != nil {
			slog.Error("building condominium", slog.String("error", err.Error()))
			http.Error(w, createCondominiumErrMessage, http.StatusInternalServerError)
			return
		}

		err = c.service.CreateCondominium(r.Context(), condominium)
		if errors.Is(err, usecases.ErrCondominiumDuplicated) {
			http.Error(w, condominiumDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("creating condominium", slog.String("error", err.Error()))
			http.Error(w, createCondominiumErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToCondominiumResponse(condominium)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *CondominiumController) getCondominium() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		condominium, err := c.service.GetCondominium(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrCondominiumNotFound) {
			http.Error(w, condominiumNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting condominium", slog.String("error", err.Error()))
			http.Error(w, getCondominiumErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToCondominiumResponse(condominium)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *CondominiumController) updateCondominium() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		var body internal.CondominiumUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update condominium request", slog.String("error", err.Error()))
			http.Error(w, updateCondominiumErrMessage, http.StatusBadRequest)
			return
		}

		if err := validate.Struct(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		condominium := domain.Condominium{
			ID:          domain.ID(id),
			Name:        body.Name,
			Email:       body.Email,
			Description: body.Description,
			Version:     body.Version,
		}

		err = c.service.UpdateCondominium(r.Context(), condominium)
		if errors.Is(err, usecases.ErrCondominiumNotFound) {
			http.Error(w, condominiumNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrCondominiumDuplicated) {
			http.Error(w, condominiumDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrCondominiumSoftDeleted) {
			http.Error(w, condominiumSoftDeletedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrCondominiumVersionConflict) {
			http.Error(w, condominiumVersionConflictErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("updating condominium", slog.String("error", err.Error()))
			http.Error(w, updateCondominiumErrMessage, http.StatusInternalServerError)
			return
		}

		condominium, err = c.service.GetCondominium(r.Context(), domain.ID(id))
		if err != nil {
			slog.Error("getting updated condominium", slog.String("error", err.Error()))
			http.Error(w, getCondominiumErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToCondominiumResponse(condominium)
		httpserver.ReplyJSONResponse(w, http.StatusOK, response)
	}
}

func (c *CondominiumController) softDeleteCondominium() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		err := c.service.SoftDeleteCondominium(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrCondominiumNotFound) {
			http.Error(w, condominiumNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrCondominiumSoftDeleted) {
			http.Error(w, condominiumSoftDeletedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("soft deleting condominium", slog.String("error", err.Error()))
			http.Error(w, softDeleteCondominiumErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *CondominiumController) activateCondominium() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		err := c.service.ActivateCondominium(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrCondominiumNotFound) {
			http.Error(w, condominiumNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrCondominiumSoftDeleted) {
			http.Error(w, condominiumSoftDeletedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("activating condominium", slog.String("error", err.Error()))
			http.Error(w, "failed to activate condominium", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *CondominiumController) deactivateCondominium() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		err := c.service.DeactivateCondominium(r.Context(), domain.ID(id))
		if errors.Is(err, usecases.ErrCondominiumNotFound) {
			http.Error(w, condominiumNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrCondominiumSoftDeleted) {
			http.Error(w, condominiumSoftDeletedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("deactivating condominium", slog.String("error", err.Error()))
			http.Error(w, "failed to deactivate condominium", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
