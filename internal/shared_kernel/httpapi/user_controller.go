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
	createUserErrMessage     = "failed to create user"
	userDuplicatedErrMessage = "user already exists"
	listUsersErrMessage      = "failed to list users"
)

func NewUserController(service usecases.UserService) *UserController {
	return &UserController{
		service: service,
	}
}

var _ httpserver.Controller = &UserController{}

type UserController struct {
	service usecases.UserService
}

func (c *UserController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/condominios/{id}/usuarios", c.listUsers())
	router.Handle("POST /v1/condominios/{id}/usuarios", c.createUser())
}

func (c *UserController) listUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		if condominiumID == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		params := httpserver.ExtractPaginationParams(r)
		pagination := usecases.Pagination{Limit: params.Limit, Offset: (params.Page - 1) * params.Limit}

		users, total, err := c.service.ListUsers(r.Context(), domain.ID(condominiumID), pagination)
		if err != nil {
			slog.Error("listing users", slog.String("error", err.Error()))
			http.Error(w, listUsersErrMessage, http.StatusInternalServerError)
			return
		}

		responses := make([]internal.UserResponse, len(users))
		for i, user := range users {
			responses[i] = internal.ToUserResponse(user)
		}

		httpserver.ReplyWithPaginatedData(w, http.StatusOK, responses, total, params)
	}
}

func (c *UserController) createUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		condominiumID := r.PathValue("id")
		if condominiumID == "" {
			http.Error(w, "condominium id is required", http.StatusBadRequest)
			return
		}

		var body internal.UserCreateRequest
		err := httpserver.DecodeJSONBody(r, &body)
		if err != nil {
			slog.Error("decoding create user request", slog.String("error", err.Error()))
			http.Error(w, createUserErrMessage, http.StatusBadRequest)
			return
		}

		if err := validate.Struct(body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		user, err := domain.NewUserBuilder().
			WithCondominiumID(domain.ID(condominiumID)).
			WithName(body.Name).
			WithEmail(body.Email).
			WithRole(domain.UserRole(body.Role)).
			Build()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		err = c.service.CreateUser(r.Context(), user)
		if errors.Is(err, usecases.ErrCondominiumNotFound) {
			http.Error(w, condominiumNotFoundErrMessage, http.StatusNotFound)
			return
		}
		if errors.Is(err, usecases.ErrCondominiumSoftDeleted) {
			http.Error(w, condominiumSoftDeletedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrUserDuplicated) {
			http.Error(w, userDuplicatedErrMessage, http.StatusConflict)
			return
		}
		if errors.Is(err, usecases.ErrInvalidUserEmail) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			slog.Error("creating user", slog.String("error", err.Error()))
			http.Error(w, createUserErrMessage, http.StatusInternalServerError)
			return
		}

		response := internal.ToUserResponse(user)
		httpserver.ReplyJSONResponse(w, http.StatusCreated, response)
	}
}
