package persistence

import (
	"context"
	"fmt"

	"predial-server/internal/catalog/domain"
	"predial-server/internal/catalog/persistence/internal"
	"predial-server/internal/catalog/usecases"
	"predial-server/internal/infra/sql"
)

func NewRequirementRepository(orm sql.ORM) (*SimpleRequirementRepository, error) {
	err := orm.AutoMigrate(&internal.ComplianceRequirement{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleRequirementRepository{orm: orm}, nil
}

var _ usecases.RequirementRepository = (*SimpleRequirementRepository)(nil)

type SimpleRequirementRepository struct {
	orm sql.ORM
}

func (r *SimpleRequirementRepository) Upsert(ctx context.Context, requirement domain.ComplianceRequirement) error {
	data := internal.FromComplianceRequirement(requirement)
	err := r.orm.WithContext(ctx).Save(&data).Error()
	if err != nil {
		return fmt.Errorf("database upsert: %w", err)
	}

	return nil
}

func (r *SimpleRequirementRepository) FindByAssetTypeSlug(ctx context.Context, slug string) ([]domain.ComplianceRequirement, error) {
	var entities []internal.ComplianceRequirement
	err := r.orm.
		WithContext(ctx).
		Where("asset_type_slug = ?", slug).
		Order("code ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.ComplianceRequirement, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
