package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"predial-server/internal/catalog/domain"
)

//go:generate mockgen -source=catalog_service.go -destination=../../../test/unit/doubles/catalog/usecases/catalog_service_mock.go -package=usecases -mock_names=CatalogService=MockCatalogService

var (
	ErrAssetTypeNotFound = errors.New("asset type not found")
)

type CatalogService interface {
	ListAssetTypes(ctx context.Context) ([]domain.AssetType, error)
	GetAssetTypeBySlug(ctx context.Context, slug string) (domain.AssetType, error)
	ListRequirementsForType(ctx context.Context, assetTypeSlug string) ([]domain.ComplianceRequirement, error)
	Seed(ctx context.Context) error
}

type AssetTypeRepository interface {
	Upsert(ctx context.Context, assetType domain.AssetType) error
	GetBySlug(ctx context.Context, slug string) (domain.AssetType, error)
	FindAll(ctx context.Context) ([]domain.AssetType, error)
}

type RequirementRepository interface {
	Upsert(ctx context.Context, requirement domain.ComplianceRequirement) error
	FindByAssetTypeSlug(ctx context.Context, slug string) ([]domain.ComplianceRequirement, error)
}

func NewCatalogService(assetTypes AssetTypeRepository, requirements RequirementRepository) *SimpleCatalogService {
	return &SimpleCatalogService{
		assetTypes:   assetTypes,
		requirements: requirements,
	}
}

var _ CatalogService = &SimpleCatalogService{}

type SimpleCatalogService struct {
	assetTypes   AssetTypeRepository
	requirements RequirementRepository
}

func (s *SimpleCatalogService) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	assetTypes, err := s.assetTypes.FindAll(ctx)
	if err != nil {
		slog.Error("listing asset types", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing asset types: %w", err)
	}

	return assetTypes, nil
}

func (s *SimpleCatalogService) GetAssetTypeBySlug(ctx context.Context, slug string) (domain.AssetType, error) {
	assetType, err := s.assetTypes.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrAssetTypeNotFound) {
			return domain.AssetType{}, ErrAssetTypeNotFound
		}
		slog.Error("getting asset type", slog.String("error", err.Error()))
		return domain.AssetType{}, fmt.Errorf("getting asset type: %w", err)
	}

	return assetType, nil
}

func (s *SimpleCatalogService) ListRequirementsForType(ctx context.Context, assetTypeSlug string) ([]domain.ComplianceRequirement, error) {
	if _, err := s.GetAssetTypeBySlug(ctx, assetTypeSlug); err != nil {
		return nil, err
	}

	requirements, err := s.requirements.FindByAssetTypeSlug(ctx, assetTypeSlug)
	if err != nil {
		slog.Error("listing requirements", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing requirements: %w", err)
	}

	return requirements, nil
}

// Seed upserts the built-in catalog. Safe to run on every startup.
func (s *SimpleCatalogService) Seed(ctx context.Context) error {
	for _, assetType := range builtinAssetTypes() {
		if err := s.assetTypes.Upsert(ctx, assetType); err != nil {
			return fmt.Errorf("seeding asset type %q: %w", assetType.Slug, err)
		}
	}

	for _, requirement := range builtinRequirements() {
		if err := s.requirements.Upsert(ctx, requirement); err != nil {
			return fmt.Errorf("seeding requirement %q/%q: %w", requirement.AssetTypeSlug, requirement.Code, err)
		}
	}

	slog.Info("catalog seeded",
		slog.Int("asset_types", len(builtinAssetTypes())),
		slog.Int("requirements", len(builtinRequirements())))

	return nil
}
