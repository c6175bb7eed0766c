package persistence

import (
	"context"
	"errors"
	"fmt"

	"predial-server/internal/infra/pubsub"
	"predial-server/internal/infra/sql"
	"predial-server/internal/shared_kernel/domain"
	"predial-server/internal/shared_kernel/persistence/internal"
	"predial-server/internal/shared_kernel/usecases"
)

func NewCondominiumRepository(publisherFactory pubsub.PublisherFactory, orm sql.ORM) (*SimpleCondominiumRepository, error) {
	publisher, err := publisherFactory.New("condominios", internal.Condominium{})
	if err != nil {
		return nil, fmt.Errorf("creating publisher: %w", err)
	}

	err = orm.AutoMigrate(&internal.Condominium{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleCondominiumRepository{
		publisher: publisher,
		orm:       orm,
	}, nil
}

var _ usecases.CondominiumRepository = (*SimpleCondominiumRepository)(nil)

type SimpleCondominiumRepository struct {
	publisher pubsub.Publisher
	orm       sql.ORM
}

func (r *SimpleCondominiumRepository) Create(ctx context.Context, condominium domain.Condominium) error {
	data := internal.FromCondominium(condominium)
	err := r.orm.WithContext(ctx).Create(&data).Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(condominium.ID), data)
	if err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}

	return nil
}

func (r *SimpleCondominiumRepository) GetByID(ctx context.Context, id domain.ID) (domain.Condominium, error) {
	var entity internal.Condominium
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Condominium{}, usecases.ErrCondominiumNotFound
	}

	if err != nil {
		return domain.Condominium{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCondominiumRepository) GetByName(ctx context.Context, name string) (domain.Condominium, error) {
	var entity internal.Condominium
	err := r.orm.
		WithContext(ctx).
		Where("name = ?", name).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.Condominium{}, usecases.ErrCondominiumNotFound
	}

	if err != nil {
		return domain.Condominium{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleCondominiumRepository) Update(ctx context.Context, condominium domain.Condominium) error {
	condominium.Version++
	data := internal.FromCondominium(condominium)

	err := r.orm.WithContext(ctx).Save(&data).Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	err = r.publisher.Publish(ctx, pubsub.Key(condominium.ID), data)
	if err != nil {
		return fmt.Errorf("publishing event: %w", err)
	}

	return nil
}

func (r *SimpleCondominiumRepository) FindAll(ctx context.Context, includeDeleted bool, pagination usecases.Pagination) ([]domain.Condominium, int, error) {
	var entities []internal.Condominium

	query := r.orm.WithContext(ctx).Model(&internal.Condominium{})

	// Filter out soft-deleted condominiums unless specifically requested
	if !includeDeleted {
		query = query.Where("deleted_at IS NULL")
	}

	var total int64
	if err := query.Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	err := query.
		Order("created_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.Condominium, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
