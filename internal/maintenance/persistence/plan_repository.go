package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"predial-server/internal/infra/sql"
	"predial-server/internal/maintenance/domain"
	"predial-server/internal/maintenance/persistence/internal"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

func NewPlanRepository(orm sql.ORM) (*SimplePlanRepository, error) {
	err := orm.AutoMigrate(&internal.MaintenancePlan{})
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimplePlanRepository{orm: orm}, nil
}

var _ usecases.PlanRepository = (*SimplePlanRepository)(nil)

type SimplePlanRepository struct {
	orm sql.ORM
}

// CreateMissing inserts each plan only when its (asset, requirement code)
// pair is free. The conflict target is the unique index, so concurrent
// generation runs for the same asset converge on one row per requirement.
func (r *SimplePlanRepository) CreateMissing(ctx context.Context, plans []domain.MaintenancePlan) (int, error) {
	created := 0
	err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for _, plan := range plans {
			data := internal.FromMaintenancePlan(plan)
			result := tx.Exec(
				`INSERT INTO planos_manutencao
					(id, condominio_id, ativo_id, requisito_codigo, title, description,
					 periodicity, responsible_role, is_legal, checklist, nbr_references,
					 last_executed_at, next_due_at, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
				 ON CONFLICT (ativo_id, requisito_codigo) DO NOTHING`,
				data.ID, data.CondominiumID, data.AssetID, data.RequirementCode,
				data.Title, data.Description, data.Periodicity, data.ResponsibleRole,
				data.IsLegal, data.Checklist, data.NBRReferences,
				data.LastExecutedAt, data.NextDueAt, data.CreatedAt, data.UpdatedAt,
			)
			if err := result.Error(); err != nil {
				return fmt.Errorf("database insert: %w", err)
			}

			created += int(result.RowsAffected())
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return created, nil
}

func (r *SimplePlanRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.MaintenancePlan, error) {
	var entity internal.MaintenancePlan
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.MaintenancePlan{}, usecases.ErrPlanNotFound
	}

	if err != nil {
		return domain.MaintenancePlan{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain()
}

func (r *SimplePlanRepository) Update(ctx context.Context, plan domain.MaintenancePlan) error {
	data := internal.FromMaintenancePlan(plan)
	err := r.orm.WithContext(ctx).Save(&data).Error()
	if err != nil {
		return fmt.Errorf("database update: %w", err)
	}

	return nil
}

func (r *SimplePlanRepository) FindByCondominium(ctx context.Context, condominiumID shareddomain.ID, pagination sharedusecases.Pagination) ([]domain.MaintenancePlan, int, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.MaintenancePlan{}).
		Where("condominio_id = ?", condominiumID.String())

	var total int64
	if err := query.Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.MaintenancePlan
	err := query.
		Order("next_due_at ASC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result, err := toDomainPlans(entities)
	if err != nil {
		return nil, 0, err
	}

	return result, int(total), nil
}

func (r *SimplePlanRepository) FindAllByCondominium(ctx context.Context, condominiumID shareddomain.ID) ([]domain.MaintenancePlan, error) {
	var entities []internal.MaintenancePlan
	err := r.orm.
		WithContext(ctx).
		Where("condominio_id = ?", condominiumID.String()).
		Order("next_due_at ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainPlans(entities)
}

func (r *SimplePlanRepository) FindDueWithin(ctx context.Context, days int) ([]domain.MaintenancePlan, error) {
	now := time.Now().UTC()
	threshold := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, days)

	var entities []internal.MaintenancePlan
	err := r.orm.
		WithContext(ctx).
		Where("next_due_at <= ?", threshold).
		Order("condominio_id ASC, next_due_at ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	return toDomainPlans(entities)
}

func toDomainPlans(entities []internal.MaintenancePlan) ([]domain.MaintenancePlan, error) {
	result := make([]domain.MaintenancePlan, len(entities))
	for i, entity := range entities {
		plan, err := entity.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("converting plan %s: %w", entity.ID, err)
		}
		result[i] = plan
	}

	return result, nil
}
