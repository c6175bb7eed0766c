package persistence

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"predial-server/internal/maintenance/domain"
	"predial-server/internal/maintenance/persistence/internal"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

func TestWorkOrderModelConversion(t *testing.T) {
	planID := shareddomain.ID("plano-1")
	completedAt := time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)
	workOrder := domain.WorkOrder{
		ID:              shareddomain.ID("os-1"),
		CondominiumID:   shareddomain.ID("cond-1"),
		Number:          "OS-2025-0042",
		AssetID:         shareddomain.ID("ativo-1"),
		PlanID:          &planID,
		Title:           "Troca de cabo de tracao",
		Type:            domain.TypeCorretiva,
		Priority:        domain.PriorityUrgente,
		Status:          domain.StatusConcluida,
		ExecutorKind:    domain.ExecutorExterno,
		ExecutorName:    "Elevadores Atlas",
		ExecutorContact: "atlas@example.com",
		NBRReferences:   []string{"NBR 16083"},
		ChecklistSnapshot: []domain.ChecklistItem{
			{Description: "Testar freio de emergencia", Mandatory: true, Done: true},
		},
		OpenedAt:    time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC),
		CompletedAt: &completedAt,
		Cost:        decimal.NewFromFloat(1250.50),
	}

	model := internal.FromWorkOrder(workOrder)
	assert.Equal(t, "os", model.TableName())
	assert.Equal(t, "OS-2025-0042", model.Number)
	assert.Equal(t, "concluida", model.Status)
	assert.NotNil(t, model.PlanID)

	back := model.ToDomain()
	assert.Equal(t, workOrder.Number, back.Number)
	assert.Equal(t, workOrder.PlanID, back.PlanID)
	assert.Equal(t, workOrder.ChecklistSnapshot, back.ChecklistSnapshot)
	assert.True(t, workOrder.Cost.Equal(back.Cost))
	assert.NotNil(t, back.CompletedAt)
}

func TestWorkOrderLogEntryConversion(t *testing.T) {
	opening := domain.NewOpeningLogEntry(shareddomain.ID("os-1"), "sindico@example.com")

	model := internal.FromWorkOrderLogEntry(opening)
	assert.Equal(t, "os_logs", model.TableName())
	assert.Nil(t, model.FromStatus)
	assert.Equal(t, "aberta", model.ToStatus)

	back := model.ToDomain()
	assert.Nil(t, back.FromStatus)
	assert.Equal(t, domain.StatusAberta, back.ToStatus)

	from := domain.StatusEmAndamento
	transition := domain.NewTransitionLogEntry(shareddomain.ID("os-1"), "zelador@example.com", from, domain.StatusConcluida, "executado")
	transitionModel := internal.FromWorkOrderLogEntry(transition)
	assert.NotNil(t, transitionModel.FromStatus)
	assert.Equal(t, "em_andamento", *transitionModel.FromStatus)
}

func TestCounterTableName(t *testing.T) {
	assert.Equal(t, "os_contadores", internal.WorkOrderCounter{}.TableName())
}
