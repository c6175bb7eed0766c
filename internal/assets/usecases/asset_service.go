package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"predial-server/internal/assets/domain"
	catalogusecases "predial-server/internal/catalog/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

//go:generate mockgen -source=asset_service.go -destination=../../../test/unit/doubles/assets/usecases/asset_service_mock.go -package=usecases -mock_names=AssetService=MockAssetService

var (
	ErrAssetNotFound    = errors.New("asset not found")
	ErrAssetSoftDeleted = errors.New("asset is soft deleted")
)

// PlanGenerator creates the preventive maintenance plans an asset requires.
// Returns how many plans were created.
type PlanGenerator interface {
	GeneratePlansForAsset(ctx context.Context, condominiumID, assetID shareddomain.ID) (int, error)
}

type AssetRepository interface {
	Create(ctx context.Context, asset domain.Asset) error
	GetByID(ctx context.Context, condominiumID, id shareddomain.ID) (domain.Asset, error)
	Update(ctx context.Context, asset domain.Asset) error
	FindByCondominium(ctx context.Context, condominiumID shareddomain.ID, pagination sharedusecases.Pagination) ([]domain.Asset, int, error)
}

type AssetService interface {
	CreateAsset(ctx context.Context, asset domain.Asset) (int, error)
	GetAsset(ctx context.Context, condominiumID, id shareddomain.ID) (domain.Asset, error)
	UpdateAsset(ctx context.Context, asset domain.Asset) error
	DeleteAsset(ctx context.Context, condominiumID, id shareddomain.ID) error
	ListAssets(ctx context.Context, condominiumID shareddomain.ID, pagination sharedusecases.Pagination) ([]domain.Asset, int, error)
}

func NewAssetService(
	repository AssetRepository,
	condominiumService sharedusecases.CondominiumService,
	catalogService catalogusecases.CatalogService,
	planGenerator PlanGenerator,
) *SimpleAssetService {
	return &SimpleAssetService{
		repository:         repository,
		condominiumService: condominiumService,
		catalogService:     catalogService,
		planGenerator:      planGenerator,
	}
}

var _ AssetService = &SimpleAssetService{}

type SimpleAssetService struct {
	repository         AssetRepository
	condominiumService sharedusecases.CondominiumService
	catalogService     catalogusecases.CatalogService
	planGenerator      PlanGenerator
}

// CreateAsset persists the asset and generates its preventive plans,
// returning how many plans were created.
func (s *SimpleAssetService) CreateAsset(ctx context.Context, asset domain.Asset) (int, error) {
	condominium, err := s.condominiumService.GetCondominium(ctx, asset.CondominiumID)
	if err != nil {
		return 0, fmt.Errorf("getting condominium: %w", err)
	}

	if condominium.IsDeleted() {
		return 0, sharedusecases.ErrCondominiumSoftDeleted
	}

	if _, err := s.catalogService.GetAssetTypeBySlug(ctx, asset.AssetTypeSlug); err != nil {
		return 0, fmt.Errorf("getting asset type: %w", err)
	}

	if err := s.repository.Create(ctx, asset); err != nil {
		slog.Error("creating asset", slog.String("error", err.Error()))
		return 0, fmt.Errorf("creating asset: %w", err)
	}

	plansCreated, err := s.planGenerator.GeneratePlansForAsset(ctx, asset.CondominiumID, asset.ID)
	if err != nil {
		slog.Error("generating plans for asset",
			slog.String("asset_id", asset.ID.String()),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("generating plans: %w", err)
	}

	slog.Info("asset created successfully",
		slog.String("id", asset.ID.String()),
		slog.String("type", asset.AssetTypeSlug),
		slog.Int("plans_created", plansCreated))

	return plansCreated, nil
}

func (s *SimpleAssetService) GetAsset(ctx context.Context, condominiumID, id shareddomain.ID) (domain.Asset, error) {
	asset, err := s.repository.GetByID(ctx, condominiumID, id)
	if err != nil {
		if errors.Is(err, ErrAssetNotFound) {
			return domain.Asset{}, ErrAssetNotFound
		}
		slog.Error("getting asset", slog.String("error", err.Error()))
		return domain.Asset{}, fmt.Errorf("getting asset: %w", err)
	}

	return asset, nil
}

func (s *SimpleAssetService) UpdateAsset(ctx context.Context, asset domain.Asset) error {
	existing, err := s.repository.GetByID(ctx, asset.CondominiumID, asset.ID)
	if err != nil {
		return err
	}

	if existing.IsDeleted() {
		return ErrAssetSoftDeleted
	}

	existing.UpdateInfo(asset.Name, asset.Location, asset.InstalledAt)

	if err := s.repository.Update(ctx, existing); err != nil {
		slog.Error("updating asset", slog.String("error", err.Error()))
		return fmt.Errorf("updating asset: %w", err)
	}

	return nil
}

func (s *SimpleAssetService) DeleteAsset(ctx context.Context, condominiumID, id shareddomain.ID) error {
	asset, err := s.repository.GetByID(ctx, condominiumID, id)
	if err != nil {
		return err
	}

	if asset.IsDeleted() {
		return ErrAssetSoftDeleted
	}

	asset.SoftDelete()

	if err := s.repository.Update(ctx, asset); err != nil {
		slog.Error("deleting asset", slog.String("error", err.Error()))
		return fmt.Errorf("deleting asset: %w", err)
	}

	slog.Info("asset soft deleted", slog.String("id", asset.ID.String()))

	return nil
}

func (s *SimpleAssetService) ListAssets(ctx context.Context, condominiumID shareddomain.ID, pagination sharedusecases.Pagination) ([]domain.Asset, int, error) {
	assets, total, err := s.repository.FindByCondominium(ctx, condominiumID, pagination)
	if err != nil {
		slog.Error("listing assets", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("listing assets: %w", err)
	}

	return assets, total, nil
}
