package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"predial-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=condominium_service.go -destination=../../../test/unit/doubles/shared_kernel/usecases/condominium_service_mock.go -package=usecases -mock_names=CondominiumService=MockCondominiumService

var (
	ErrCondominiumNotFound        = errors.New("condominium not found")
	ErrCondominiumDuplicated      = errors.New("condominium already exists")
	ErrCondominiumSoftDeleted     = errors.New("condominium is soft deleted")
	ErrCondominiumVersionConflict = errors.New("condominium version conflict")
)

type CondominiumService interface {
	CreateCondominium(ctx context.Context, condominium domain.Condominium) error
	GetCondominium(ctx context.Context, id domain.ID) (domain.Condominium, error)
	GetCondominiumByName(ctx context.Context, name string) (domain.Condominium, error)
	ListCondominiums(ctx context.Context, includeDeleted bool, pagination Pagination) ([]domain.Condominium, int, error)
	UpdateCondominium(ctx context.Context, condominium domain.Condominium) error
	SoftDeleteCondominium(ctx context.Context, id domain.ID) error
	ActivateCondominium(ctx context.Context, id domain.ID) error
	DeactivateCondominium(ctx context.Context, id domain.ID) error
}

func NewCondominiumService(repository CondominiumRepository) *SimpleCondominiumService {
	return &SimpleCondominiumService{
		repository: repository,
	}
}

var _ CondominiumService = &SimpleCondominiumService{}

type SimpleCondominiumService struct {
	repository CondominiumRepository
}

func (s *SimpleCondominiumService) CreateCondominium(ctx context.Context, condominium domain.Condominium) error {
	existing, err := s.repository.GetByName(ctx, condominium.Name)
	if err != nil && !errors.Is(err, ErrCondominiumNotFound) {
		slog.Error("checking existing condominium", slog.String("error", err.Error()))
		return fmt.Errorf("checking existing condominium: %w", err)
	}

	if existing.ID != "" {
		slog.Warn("condominium already exists", slog.String("name", condominium.Name))
		return ErrCondominiumDuplicated
	}

	err = s.repository.Create(ctx, condominium)
	if err != nil {
		slog.Error("creating condominium", slog.String("error", err.Error()))
		return fmt.Errorf("creating condominium: %w", err)
	}

	slog.Info("condominium created successfully",
		slog.String("id", condominium.ID.String()),
		slog.String("name", condominium.Name))

	return nil
}

func (s *SimpleCondominiumService) GetCondominium(ctx context.Context, id domain.ID) (domain.Condominium, error) {
	condominium, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCondominiumNotFound) {
			return domain.Condominium{}, ErrCondominiumNotFound
		}
		slog.Error("getting condominium", slog.String("error", err.Error()))
		return domain.Condominium{}, fmt.Errorf("getting condominium: %w", err)
	}

	return condominium, nil
}

func (s *SimpleCondominiumService) GetCondominiumByName(ctx context.Context, name string) (domain.Condominium, error) {
	condominium, err := s.repository.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrCondominiumNotFound) {
			return domain.Condominium{}, ErrCondominiumNotFound
		}
		slog.Error("getting condominium by name", slog.String("error", err.Error()))
		return domain.Condominium{}, fmt.Errorf("getting condominium by name: %w", err)
	}

	return condominium, nil
}

func (s *SimpleCondominiumService) ListCondominiums(ctx context.Context, includeDeleted bool, pagination Pagination) ([]domain.Condominium, int, error) {
	condominiums, total, err := s.repository.FindAll(ctx, includeDeleted, pagination)
	if err != nil {
		slog.Error("listing condominiums", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing condominiums: %w", err)
	}

	return condominiums, total, nil
}

func (s *SimpleCondominiumService) UpdateCondominium(ctx context.Context, condominium domain.Condominium) error {
	existing, err := s.repository.GetByID(ctx, condominium.ID)
	if err != nil {
		if errors.Is(err, ErrCondominiumNotFound) {
			return ErrCondominiumNotFound
		}
		return fmt.Errorf("getting condominium: %w", err)
	}

	if existing.IsDeleted() {
		return ErrCondominiumSoftDeleted
	}

	// Check version for optimistic locking
	if condominium.Version != 0 && condominium.Version != existing.Version {
		return ErrCondominiumVersionConflict
	}

	// Check if new name conflicts with another condominium
	if condominium.Name != "" && condominium.Name != existing.Name {
		conflicting, err := s.repository.GetByName(ctx, condominium.Name)
		if err != nil && !errors.Is(err, ErrCondominiumNotFound) {
			return fmt.Errorf("checking name conflict: %w", err)
		}
		if err == nil && conflicting.ID != condominium.ID {
			return ErrCondominiumDuplicated
		}
	}

	existing.UpdateInfo(condominium.Name, condominium.Email, condominium.Description)

	err = s.repository.Update(ctx, existing)
	if err != nil {
		slog.Error("updating condominium", slog.String("error", err.Error()))
		return fmt.Errorf("updating condominium: %w", err)
	}

	slog.Info("condominium updated successfully",
		slog.String("id", condominium.ID.String()),
		slog.Int("version", existing.Version))
	return nil
}

func (s *SimpleCondominiumService) SoftDeleteCondominium(ctx context.Context, id domain.ID) error {
	condominium, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCondominiumNotFound) {
			return ErrCondominiumNotFound
		}
		return fmt.Errorf("getting condominium: %w", err)
	}

	if condominium.IsDeleted() {
		return ErrCondominiumSoftDeleted
	}

	condominium.SoftDelete()

	err = s.repository.Update(ctx, condominium)
	if err != nil {
		slog.Error("soft deleting condominium", slog.String("error", err.Error()))
		return fmt.Errorf("soft deleting condominium: %w", err)
	}

	slog.Info("condominium soft deleted successfully", slog.String("id", id.String()))
	return nil
}

func (s *SimpleCondominiumService) ActivateCondominium(ctx context.Context, id domain.ID) error {
	condominium, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCondominiumNotFound) {
			return ErrCondominiumNotFound
		}
		return fmt.Errorf("getting condominium: %w", err)
	}

	if condominium.IsDeleted() {
		return ErrCondominiumSoftDeleted
	}

	condominium.Activate()

	err = s.repository.Update(ctx, condominium)
	if err != nil {
		slog.Error("activating condominium", slog.String("error", err.Error()))
		return fmt.Errorf("activating condominium: %w", err)
	}

	slog.Info("condominium activated successfully", slog.String("id", id.String()))
	return nil
}

func (s *SimpleCondominiumService) DeactivateCondominium(ctx context.Context, id domain.ID) error {
	condominium, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCondominiumNotFound) {
			return ErrCondominiumNotFound
		}
		return fmt.Errorf("getting condominium: %w", err)
	}

	if condominium.IsDeleted() {
		return ErrCondominiumSoftDeleted
	}

	condominium.Deactivate()

	err = s.repository.Update(ctx, condominium)
	if err != nil {
		slog.Error("deactivating condominium", slog.String("error", err.Error()))
		return fmt.Errorf("deactivating condominium: %w", err)
	}

	slog.Info("condominium deactivated successfully", slog.String("id", id.String()))
	return nil
}
