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

func NewUserRepository(orm sql.ORM) (*SimpleUserRepository, error) {
	err := orm.AutoMigrate(&internal.User{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleUserRepository{orm: orm}, nil
}

var _ usecases.UserRepository = (*SimpleUserRepository)(nil)

type SimpleUserRepository struct {
	orm sql.ORM
}

func (r *SimpleUserRepository) Create(ctx context.Context, user domain.User) error {
	data := internal.FromUser(user)
	err := r.orm.WithContext(ctx).Create(&data).Error()
	if err != nil {
		return fmt.Errorf("database insert: %w", err)
	}

	return nil
}

func (r *SimpleUserRepository) GetByID(ctx context.Context, id domain.ID) (domain.User, error) {
	var entity internal.User
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.User{}, usecases.ErrUserNotFound
	}

	if err != nil {
		return domain.User{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleUserRepository) GetByEmail(ctx context.Context, condominiumID domain.ID, email string) (domain.User, error) {
	var entity internal.User
	err := r.orm.
		WithContext(ctx).
		Where("condominio_id = ? AND email = ?", condominiumID.String(), email).
		First(&entity).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.User{}, usecases.ErrUserNotFound
	}

	if err != nil {
		return domain.User{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleUserRepository) FindByCondominium(ctx context.Context, condominiumID domain.ID, pagination usecases.Pagination) ([]domain.User, int, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.User{}).
		Where("condominio_id = ?", condominiumID.String())

	var total int64
	if err := query.Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.User
	err := query.
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.User, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}
