package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"predial-server/internal/assets/domain"
	"predial-server/internal/assets/httpapi/internal"
	"predial-server/internal/assets/usecases"
	catalogusecases "predial-server/internal/catalog/usecases"
	"predial-server/internal/infra/httpserver"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

const (
	createAssetErrMessage          = "failed to create asset"
	getAssetErrMessage             = "failed to get asset"
	updateAssetErrMessage          = "failed to update asset"
	deleteAssetErrMessage          = "failed to delete asset"
	listAssetsErrMessage           = "failed to list assets"
	assetNotFoundErrMessage        = "asset not found"
	assetTypeUnknownErrMessage     = "unknown asset type"
	assetCondominiumGoneErrMessage = "condominium not found"
	assetSoftDeletedErrMessage     = "asset is deleted"
)

var validate = validator.New()

func NewAssetController(service usecases.AssetService) *AssetController {
	return &AssetController{
		service: service,
	}
}

var _ httpserver.Controller = &AssetController{}

type AssetController struct {
	service usecases.AssetService
}

func (c *AssetController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/condominios/{id}/ativos", c.listAssets())
	router.Handle("POST /v1/condominios/{id}/ativos", c.createAsset())
	router.Handle("GET /v1/condominios/{id}/ativos/{assetId}", c.getAsset())
	router.Handle("PUT /v1/condominios/{id}/ativos/{assetId}", c.updateAsset())
	router.Handle("DELETE /v1/condominios/{id}/ativos/{assetId}", c.deleteAsset())
}

func (c *AssetController) createAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		if condominiumID == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		var body internal.AssetCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create asset request", slog.String("error", err.Error()))
			http.Error(w, createAssetErrMessage, http.StatusBadRequest)
			return
		}

		if err := validate.Struct(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		asset, err := domain.NewAssetBuilder().
			WithCondominiumID(shareddomain.ID(condominiumID)).
			WithAssetTypeSlug(body.AssetTypeSlug).
			WithName(body.Name).
			WithLocation(domain.Location{
				Tower: body.Tower,
				Floor: body.Floor,
				Place: body.Place,
			}).
			WithInstalledAt(body.InstalledAt).
			Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		plansCreated, err := c.service.CreateAsset(r.Context(), asset)
		if errors.Is(err, sharedusecases.ErrCondominiumNotFound) {
			http.Error(w, assetCondominiumGoneErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, sharedusecases.ErrCondominiumSoftDeleted) {
			http.Error(w, assetCondominiumGoneErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, catalogusecases.ErrAssetTypeNotFound) {
			http.Error(w, assetTypeUnknownErrMessage, http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("creating asset", slog.String("error", err.Error()))
			http.Error(w, createAssetErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToAssetCreatedResponse(asset, plansCreated)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}

func (c *AssetController) getAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		assetID := r.PathValue("assetId")
		if condominiumID == "" || assetID == "" {
			http.Error(w, "condominium id and asset id are required", http.StatusBadRequest)
			return
		}

		asset, err := c.service.GetAsset(r.Context(), shareddomain.ID(condominiumID), shareddomain.ID(assetID))
		if errors.Is(err, usecases.ErrAssetNotFound) {
			http.Error(w, assetNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if err != nil {
			slog.Error("getting asset", slog.String("error", err.Error()))
			http.Error(w, getAssetErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToAssetResponse(asset))
	}
}

func (c *AssetController) updateAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		assetID := r.PathValue("assetId")
		if condominiumID == "" || assetID == "" {
			http.Error(w, "condominium id and asset id are required", http.StatusBadRequest)
			return
		}

		var body internal.AssetUpdateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding update asset request", slog.String("error", err.Error()))
			http.Error(w, updateAssetErrMessage, http.StatusBadRequest)
			return
		}

		if err := validate.Struct(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		asset := domain.Asset{
			ID:            shareddomain.ID(assetID),
			CondominiumID: shareddomain.ID(condominiumID),
			Name:          body.Name,
			Location: domain.Location{
				Tower: body.Tower,
				Floor: body.Floor,
				Place: body.Place,
			},
			InstalledAt: body.InstalledAt,
		}

		err = c.service.UpdateAsset(r.Context(), asset)
		if errors.Is(err, usecases.ErrAssetNotFound) {
			http.Error(w, assetNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrAssetSoftDeleted) {
			http.Error(w, assetSoftDeletedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("updating asset", slog.String("error", err.Error()))
			http.Error(w, updateAssetErrMessage, http.StatusInternalServerError)
			return
		}

		updated, err := c.service.GetAsset(r.Context(), shareddomain.ID(condominiumID), shareddomain.ID(assetID))
		if err != nil {
			slog.Error("getting asset after update", slog.String("error", err.Error()))
			http.Error(w, updateAssetErrMessage, http.StatusInternalServerError)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToAssetResponse(updated))
	}
}

func (c *AssetController) deleteAsset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		assetID := r.PathValue("assetId")
		if condominiumID == "" || assetID == "" {
			http.Error(w, "condominium id and asset id are required", http.StatusBadRequest)
			return
		}

		err := c.service.DeleteAsset(r.Context(), shareddomain.ID(condominiumID), shareddomain.ID(assetID))
		if errors.Is(err, usecases.ErrAssetNotFound) {
			http.Error(w, assetNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrAssetSoftDeleted) {
			http.Error(w, assetSoftDeletedErrMessage, http.StatusConflict)
			return
		}
		if err != nil {
			slog.Error("deleting asset", slog.String("error", err.Error()))
			http.Error(w, deleteAssetErrMessage, http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *AssetController) listAssets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		if condominiumID == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := sharedusecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		assets, total, err := c.service.ListAssets(r.Context(), shareddomain.ID(condominiumID), pagination)
		if err != nil {
			slog.Error("listing assets", slog.String("error", err.Error()))
			http.Error(w, listAssetsErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.AssetResponse, len(assets))
		for i, asset := range assets {
			responses[i] = internal.ToAssetResponse(asset)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}
