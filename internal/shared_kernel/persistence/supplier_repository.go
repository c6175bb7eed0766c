package persistence

import (
	"context"
	"errors"
	"fmt"

	"predial-server/internal/infra/sql"
	"predial-server/internal/shared_kernel/domain"
	"predial-server/internal/shared_kernel/persistence/internal"
	"predial-server/internal/shared_kernel/usecases"
)

func NewSupplierRepository(orm sql.ORM) (*SimpleSupplierRepository, error) {
	err := orm.AutoMigrate(&internal.Supplier{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleSupplierRepository{orm: orm}, nil
}

var _ usecases.SupplierRepository = (*SimpleSupplierRepository)(nil)

type SimpleSupplierRepository struct {
	orm sql.ORM
}

func (r *SimpleSupplierRepository) Create(ctx context.Context, supplier domain.Supplier) error {
	data := internal.FromSupplier(supplier)
	err := r.orm.WithContext(ctx).Create(&data).Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleSupplierRepository) GetByID(ctx context.Context, id domain.ID) (domain.Supplier, error) {
	var entity internal.Supplier
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Supplier{}, usecases.ErrSupplierNotFound
	}

	if err != nil {
		return domain.Supplier{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleSupplierRepository) FindByCondominium(ctx context.Context, condominiumID domain.ID, pagination usecases.Pagination) ([]domain.Supplier, int, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.Supplier{}).
		Where("condominio_id = ?", condominiumID.String())

	var total int64
	if err := query.Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.Supplier
	err := query.
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Supplier, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
