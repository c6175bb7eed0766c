// Package adapters bridges the maintenance engine to the other bounded
// contexts without letting it depend on their domain types.
package adapters

import (
	"context"
	"errors"
	"fmt"

	assetusecases "predial-server/internal/assets/usecases"
	catalogdomain "predial-server/internal/catalog/domain"
	catalogusecases "predial-server/internal/catalog/usecases"
	"predial-server/internal/maintenance/domain"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

func NewAssetProvider(assets assetusecases.AssetRepository) *AssetProviderAdapter {
	return &AssetProviderAdapter{assets: assets}
}

var _ usecases.AssetProvider = (*AssetProviderAdapter)(nil)

type AssetProviderAdapter struct {
	assets assetusecases.AssetRepository
}

func (a *AssetProviderAdapter) GetAsset(ctx context.Context, condominiumID, assetID shareddomain.ID) (usecases.AssetInfo, error) {
	asset, err := a.assets.GetByID(ctx, condominiumID, assetID)
	if errors.Is(err, assetusecases.ErrAssetNotFound) {
		return usecases.AssetInfo{}, usecases.ErrAssetNotFound
	}
	if err != nil {
		return usecases.AssetInfo{}, fmt.Errorf("getting asset: %w", err)
	}

	if asset.IsDeleted() {
		return usecases.AssetInfo{}, usecases.ErrAssetNotFound
	}

	return usecases.AssetInfo{
		ID:            asset.ID,
		CondominiumID: asset.CondominiumID,
		AssetTypeSlug: asset.AssetTypeSlug,
		Name:          asset.Name,
	}, nil
}

func NewCatalogProvider(catalog catalogusecases.CatalogService) *CatalogProviderAdapter {
	return &CatalogProviderAdapter{catalog: catalog}
}

var _ usecases.CatalogProvider = (*CatalogProviderAdapter)(nil)

type CatalogProviderAdapter struct {
	catalog catalogusecases.CatalogService
}

func (a *CatalogProviderAdapter) GetAssetType(ctx context.Context, slug string) (usecases.AssetTypeInfo, error) {
	assetType, err := a.catalog.GetAssetTypeBySlug(ctx, slug)
	if errors.Is(err, catalogusecases.ErrAssetTypeNotFound) {
		return usecases.AssetTypeInfo{}, usecases.ErrAssetTypeNotFound
	}
	if err != nil {
		return usecases.AssetTypeInfo{}, fmt.Errorf("getting asset type: %w", err)
	}

	return usecases.AssetTypeInfo{
		Slug:               assetType.Slug,
		Name:               assetType.Name,
		RequiresCompliance: assetType.RequiresCompliance,
	}, nil
}

func (a *CatalogProviderAdapter) ListRequirements(ctx context.Context, assetTypeSlug string) ([]usecases.RequirementInfo, error) {
	requirements, err := a.catalog.ListRequirementsForType(ctx, assetTypeSlug)
	if err != nil {
		return nil, fmt.Errorf("listing requirements: %w", err)
	}

	result := make([]usecases.RequirementInfo, len(requirements))
	for i, requirement := range requirements {
		result[i] = usecases.RequirementInfo{
			Code:            requirement.Code,
			Title:           requirement.Title,
			Description:     requirement.Description,
			Periodicity:     requirement.Periodicity,
			ResponsibleRole: requirement.ResponsibleRole,
			IsLegal:         requirement.IsLegal,
			Checklist:       toChecklist(requirement.Checklist),
		}
	}

	return result, nil
}

func toChecklist(items []catalogdomain.ChecklistItem) []domain.ChecklistItem {
	result := make([]domain.ChecklistItem, len(items))
	for i, item := range items {
		result[i] = domain.ChecklistItem{
			Description: item.Description,
			Mandatory:   item.Mandatory,
		}
	}

	return result
}

func NewUserResolver(users sharedusecases.UserService) *UserResolverAdapter {
	return &UserResolverAdapter{users: users}
}

var _ usecases.UserResolver = (*UserResolverAdapter)(nil)

type UserResolverAdapter struct {
	users sharedusecases.UserService
}

func (a *UserResolverAdapter) UserExists(ctx context.Context, condominiumID, userID shareddomain.ID) (bool, error) {
	user, err := a.users.GetUser(ctx, userID)
	if errors.Is(err, sharedusecases.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("getting user: %w", err)
	}

	return user.CondominiumID == condominiumID && user.IsActive, nil
}
