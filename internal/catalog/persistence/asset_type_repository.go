package persistence

import (
	"context"
	"errors"
	"fmt"

	"predial-server/internal/catalog/domain"
	"predial-server/internal/catalog/persistence/internal"
	"predial-server/internal/catalog/usecases"
	"predial-server/internal/infra/sql"
)

func NewAssetTypeRepository(orm sql.ORM) (*SimpleAssetTypeRepository, error) {
	err := orm.AutoMigrate(&internal.AssetType{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleAssetTypeRepository{orm: orm}, nil
}

var _ usecases.AssetTypeRepository = (*SimpleAssetTypeRepository)(nil)

type SimpleAssetTypeRepository struct {
	orm sql.ORM
}

func (r *SimpleAssetTypeRepository) Upsert(ctx context.Context, assetType domain.AssetType) error {
	data := internal.FromAssetType(assetType)
	err := r.orm.WithContext(ctx).Save(&data).Error()
	if err != nil {
		return fmt.Errorf("database upsert: %w", err)
	}

	return nil
}

func (r *SimpleAssetTypeRepository) GetBySlug(ctx context.Context, slug string) (domain.AssetType, error) {
	var entity internal.AssetType
	err := r.orm.
		WithContext(ctx).
		Where("slug = ?", slug).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.AssetType{}, usecases.ErrAssetTypeNotFound
	}

	if err != nil {
		return domain.AssetType{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleAssetTypeRepository) FindAll(ctx context.Context) ([]domain.AssetType, error) {
	var entities []internal.AssetType
	err := r.orm.
		WithContext(ctx).
		Order("name ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.AssetType, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
