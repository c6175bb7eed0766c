package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"predial-server/internal/infra/utils"
	"predial-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=user_service.go -destination=../../../test/unit/doubles/shared_kernel/usecases/user_service_mock.go -package=usecases -mock_names=UserService=MockUserService

var ErrInvalidUserEmail = errors.New("invalid user email")

type UserService interface {
	CreateUser(ctx context.Context, user domain.User) error
	GetUser(ctx context.Context, id domain.ID) (domain.User, error)
	ListUsers(ctx context.Context, condominiumID domain.ID, pagination Pagination) ([]domain.User, int, error)
}

func NewUserService(repository UserRepository, condominiumService CondominiumService) *SimpleUserService {
	return &SimpleUserService{
		repository:         repository,
		condominiumService: condominiumService,
	}
}

var _ UserService = &SimpleUserService{}

type SimpleUserService struct {
	repository         UserRepository
	condominiumService CondominiumService
}

func (s *SimpleUserService) CreateUser(ctx context.Context, user domain.User) error {
	if err := utils.ValidateEmail(user.Email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUserEmail, err.Error())
	}

	condominium, err := s.condominiumService.GetCondominium(ctx, user.CondominiumID)
	if err != nil {
		return fmt.Errorf("getting condominium: %w", err)
	}

	if condominium.IsDeleted() {
		return ErrCondominiumSoftDeleted
	}

	existing, err := s.repository.GetByEmail(ctx, user.CondominiumID, user.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("checking existing user: %w", err)
	}

	if existing.ID != "" {
		slog.Warn("user already exists",
			slog.String("condominium_id", user.CondominiumID.String()),
			slog.String("email", user.Email))
		return ErrUserDuplicated
	}

	err = s.repository.Create(ctx, user)
	if err != nil {
		slog.Error("creating user", slog.String("error", err.Error()))
		return fmt.Errorf("creating user: %w", err)
	}

	slog.Info("user created successfully",
		slog.String("id", user.ID.String()),
		slog.String("role", string(user.Role)))

	return nil
}

func (s *SimpleUserService) GetUser(ctx context.Context, id domain.ID) (domain.User, error) {
	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		slog.Error("getting user", slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *SimpleUserService) ListUsers(ctx context.Context, condominiumID domain.ID, pagination Pagination) ([]domain.User, int, error) {
	users, total, err := s.repository.FindByCondominium(ctx, condominiumID, pagination)
	if err != nil {
		slog.Error("listing users", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing users: %w", err)
	}

	return users, total, nil
}
