package persistence

import (
	"context"
	"errors"
	"fmt"

	"predial-server/internal/assets/domain"
	"predial-server/internal/assets/persistence/internal"
	"predial-server/internal/assets/usecases"
	"predial-server/internal/infra/sql"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

func NewAssetRepository(orm sql.ORM) (*SimpleAssetRepository, error) {
	err := orm.AutoMigrate(&internal.Asset{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleAssetRepository{orm: orm}, nil
}

var _ usecases.AssetRepository = (*SimpleAssetRepository)(nil)

type SimpleAssetRepository struct {
	orm sql.ORM
}

func (r *SimpleAssetRepository) Create(ctx context.Context, asset domain.Asset) error {
	data := internal.FromAsset(asset)
	err := r.orm.WithContext(ctx).Create(&data).Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleAssetRepository) GetByID(ctx context.Context, condominiumID, id shareddomain.ID) (domain.Asset, error) {
	var entity internal.Asset
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ? AND condominio_id = ?", id.String(), condominiumID.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Asset{}, usecases.ErrAssetNotFound
	}

	if err != nil {
		return domain.Asset{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleAssetRepository) Update(ctx context.Context, asset domain.Asset) error {
	data := internal.FromAsset(asset)
	err := r.orm.WithContext(ctx).Save(&data).Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimpleAssetRepository) FindByCondominium(ctx context.Context, condominiumID shareddomain.ID, pagination sharedusecases.Pagination) ([]domain.Asset, int, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.Asset{}).
		Where("condominio_id = ? AND deleted_at IS NULL", condominiumID.String())

	var total int64
	if err := query.Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.Asset
	err := query.
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Asset, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
