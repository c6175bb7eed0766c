package persistence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"predial-server/internal/infra/sql"
	"predial-server/internal/maintenance/domain"
	"predial-server/internal/maintenance/persistence/internal"
	"predial-server/internal/maintenance/usecases"
	shareddomain "predial-server/internal/shared_kernel/domain"
	sharedusecases "predial-server/internal/shared_kernel/usecases"
)

// numberAllocationAttempts bounds the retry loop on duplicate numbers.
const numberAllocationAttempts = 3

func NewWorkOrderRepository(orm sql.ORM) (*SimpleWorkOrderRepository, error) {
	err := orm.AutoMigrate(
		&internal.WorkOrder{},
		&internal.WorkOrderLogEntry{},
		&internal.WorkOrderCounter{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto migrating: %w", err)
	}

	return &SimpleWorkOrderRepository{orm: orm}, nil
}

var _ usecases.WorkOrderRepository = (*SimpleWorkOrderRepository)(nil)

type SimpleWorkOrderRepository struct {
	orm sql.ORM
}

// Create allocates the next sequential number for the tenant and year, then
// inserts the order and its opening log entry in the same transaction. A
// duplicate number means another writer won the same sequence, so the whole
// transaction is retried with a fresh allocation.
func (r *SimpleWorkOrderRepository) Create(ctx context.Context, workOrder *domain.WorkOrder, openingEntry domain.WorkOrderLogEntry) error {
	year := workOrder.OpenedAt.UTC().Year()

	for attempt := 1; attempt <= numberAllocationAttempts; attempt++ {
		err := r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
			var seq int
			err := tx.Raw(
				`INSERT INTO os_contadores (condominio_id, ano, ultimo_seq)
				 VALUES (?, ?, 1)
				 ON CONFLICT (condominio_id, ano)
				 DO UPDATE SET ultimo_seq = os_contadores.ultimo_seq + 1
				 RETURNING ultimo_seq`,
				workOrder.CondominiumID.String(), year,
			).Scan(&seq).Error()
			if err != nil {
				return fmt.Errorf("allocating number: %w", err)
			}

			workOrder.Number = domain.FormatNumber(year, seq)

			data := internal.FromWorkOrder(*workOrder)
			if err := tx.Create(&data).Error(); err != nil {
				return fmt.Errorf("database insert: %w", err)
			}

			entry := internal.FromWorkOrderLogEntry(openingEntry)
			if err := tx.Create(&entry).Error(); err != nil {
				return fmt.Errorf("inserting opening log: %w", err)
			}

			return nil
		})
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrDuplicatedKey) {
			return err
		}

		slog.Warn("work order number collision, retrying",
			slog.String("condominium_id", workOrder.CondominiumID.String()),
			slog.Int("attempt", attempt))
	}

	return usecases.ErrWorkOrderNumberExhausted
}

func (r *SimpleWorkOrderRepository) GetByID(ctx context.Context, id shareddomain.ID) (domain.WorkOrder, error) {
	var entity internal.WorkOrder
	err := r.orm.
		WithContext(ctx).
		First(&entity, "id = ?", id.String()).
		Error()

	if errors.Is(err, sql.ErrRecordNotFound) {
		return domain.WorkOrder{}, usecases.ErrWorkOrderNotFound
	}

	if err != nil {
		return domain.WorkOrder{}, fmt.Errorf("database query: %w", err)
	}

	return entity.ToDomain(), nil
}

func (r *SimpleWorkOrderRepository) UpdateWithLog(ctx context.Context, workOrder domain.WorkOrder, entry domain.WorkOrderLogEntry, plan *domain.MaintenancePlan) error {
	return r.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		data := internal.FromWorkOrder(workOrder)
		if err := tx.Save(&data).Error(); err != nil {
			return fmt.Errorf("database update: %w", err)
		}

		logData := internal.FromWorkOrderLogEntry(entry)
		if err := tx.Create(&logData).Error(); err != nil {
			return fmt.Errorf("inserting log entry: %w", err)
		}

		if plan != nil {
			planData := internal.FromMaintenancePlan(*plan)
			if err := tx.Save(&planData).Error(); err != nil {
				return fmt.Errorf("updating plan: %w", err)
			}
		}

		return nil
	})
}

func (r *SimpleWorkOrderRepository) FindByCondominium(ctx context.Context, condominiumID shareddomain.ID, filter usecases.WorkOrderFilter, pagination sharedusecases.Pagination) ([]domain.WorkOrder, int, error) {
	query := r.orm.
		WithContext(ctx).
		Model(&internal.WorkOrder{}).
		Where("condominio_id = ?", condominiumID.String())

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("tipo = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error(); err != nil {
		return nil, 0, fmt.Errorf("database count: %w", err)
	}

	var entities []internal.WorkOrder
	err := query.
		Order("opened_at DESC").
		Limit(pagination.Limit).
		Offset(pagination.Offset).
		Find(&entities).
		Error()
	if err != nil {
		return nil, 0, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.WorkOrder, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, int(total), nil
}

func (r *SimpleWorkOrderRepository) FindLogs(ctx context.Context, workOrderID shareddomain.ID) ([]domain.WorkOrderLogEntry, error) {
	var entities []internal.WorkOrderLogEntry
	err := r.orm.
		WithContext(ctx).
		Where("os_id = ?", workOrderID.String()).
		Order("timestamp ASC").
		Find(&entities).
		Error()
	if err != nil {
		return nil, fmt.Errorf("database query: %w", err)
	}

	result := make([]domain.WorkOrderLogEntry, len(entities))
	for i, entity := range entities {
		result[i] = entity.ToDomain()
	}

	return result, nil
}
