package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"predial-server/internal/catalog/httpapi/internal"
	"predial-server/internal/catalog/usecases"
	"predial-server/internal/infra/httpserver"
)

const (
	listAssetTypesErrMessage    = "failed to list asset types"
	listRequirementsErrMessage  = "failed to list requirements"
	assetTypeNotFoundErrMessage = "asset type not found"
)

func NewCatalogController(service usecases.CatalogService) *CatalogController {
	return &CatalogController{
		service: service,
	}
}

var _ httpserver.Controller = &CatalogController{}

type CatalogController struct {
	service usecases.CatalogService
}

func (c *CatalogController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/ativo-tipos", c.listAssetTypes())
	router.Handle("GET /v1/ativo-tipos/{slug}", c.getAssetType())
	router.Handle("GET /v1/ativo-tipos/{slug}/requisitos", c.listRequirements())
}

func (c *CatalogController) listAssetTypes() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetTypes, err := c.service.ListAssetTypes(r.Context())
		if err != nil {
			slog.Error("listing asset types", slog.String("error", err.Error()))
			http.Error(w, listAssetTypesErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.AssetTypeResponse, len(assetTypes))
		for i, assetType := range assetTypes {
			responses[i] = internal.ToAssetTypeResponse(assetType)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}

func (c *CatalogController) getAssetType() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		if slug == "" {
			http.Error(w, "asset type slug is required", http.StatusBadRequest)
			return
		}

		assetType, err := c.service.GetAssetTypeBySlug(r.Context(), slug)
		if errors.Is(err, usecases.ErrAssetTypeNotFound) {
			http.Error(w, assetTypeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting asset type", slog.String("error", err.Error()))
			http.Error(w, listAssetTypesErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToAssetTypeResponse(assetType))
	}
}

func (c *CatalogController) listRequirements() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := r.PathValue("slug")
		if slug == "" {
			http.Error(w, "asset type slug is required", http.StatusBadRequest)
			return
		}

		requirements, err := c.service.ListRequirementsForType(r.Context(), slug)
		if errors.Is(err, usecases.ErrAssetTypeNotFound) {
			http.Error(w, assetTypeNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("listing requirements", slog.String("error", err.Error()))
			http.Error(w, listRequirementsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.RequirementResponse, len(requirements))
		for i, requirement := range requirements {
			responses[i] = internal.ToRequirementResponse(requirement)
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, responses)
	}
}
