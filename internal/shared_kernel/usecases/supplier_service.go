package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"predial-server/internal/shared_kernel/domain"
)

//go:generate mockgen -source=supplier_service.go -destination=../../../test/unit/doubles/shared_kernel/usecases/supplier_service_mock.go -package=usecases -mock_names=SupplierService=MockSupplierService

type SupplierService interface {
	CreateSupplier(ctx context.Context, supplier domain.Supplier) error
	GetSupplier(ctx context.Context, id domain.ID) (domain.Supplier, error)
	ListSuppliers(ctx context.Context, condominiumID domain.ID, pagination Pagination) ([]domain.Supplier, int, error)
}

func NewSupplierService(repository SupplierRepository, condominiumService CondominiumService) *SimpleSupplierService {
	return &SimpleSupplierService{
		repository:         repository,
		condominiumService: condominiumService,
	}
}

var _ SupplierService = &SimpleSupplierService{}

type SimpleSupplierService struct {
	repository         SupplierRepository
	condominiumService CondominiumService
}

func (s *SimpleSupplierService) CreateSupplier(ctx context.Context, supplier domain.Supplier) error {
	condominium, err := s.condominiumService.GetCondominium(ctx, supplier.CondominiumID)
	if err != nil {
		return fmt.Errorf("getting condominium: %w", err)
	}

	if condominium.IsDeleted() {
		return ErrCondominiumSoftDeleted
	}

	err = s.repository.Create(ctx, supplier)
	if err != nil {
		slog.Error("creating supplier", slog.String("error", err.Error()))
		return fmt.Errorf("creating supplier: %w", err)
	}

	slog.Info("supplier created successfully",
		slog.String("id", supplier.ID.String()),
		slog.String("name", supplier.Name))

	return nil
}

func (s *SimpleSupplierService) GetSupplier(ctx context.Context, id domain.ID) (domain.Supplier, error) {
	supplier, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrSupplierNotFound) {
			return domain.Supplier{}, ErrSupplierNotFound
		}
		slog.Error("getting supplier", slog.String("error", err.Error()))
		return domain.Supplier{}, fmt.Errorf("getting supplier: %w", err)
	}

	return supplier, nil
}

func (s *SimpleSupplierService) ListSuppliers(ctx context.Context, condominiumID domain.ID, pagination Pagination) ([]domain.Supplier, int, error) {
	suppliers, total, err := s.repository.FindByCondominium(ctx, condominiumID, pagination)
	if err != nil {
		slog.Error("listing suppliers", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing suppliers: %w", err)
	}

	return suppliers, total, nil
}
