package domain

import (
	"time"

	"predial-server/internal/infra/utils"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

// WorkOrderLogEntry is one line of a work order's append-only audit trail.
// FromStatus is nil on the opening entry.
type WorkOrderLogEntry struct {
	ID          shareddomain.ID
	WorkOrderID shareddomain.ID
	Timestamp   time.Time
	Actor       string
	FromStatus  *Status
	ToStatus    Status
	Note        string
}

func NewOpeningLogEntry(workOrderID shareddomain.ID, actor string) WorkOrderLogEntry {
	return WorkOrderLogEntry{
		ID:          shareddomain.ID(utils.GenerateUUID()),
		WorkOrderID: workOrderID,
		Timestamp:   time.Now(),
		Actor:       actor,
		ToStatus:    StatusAberta,
	}
}

func NewTransitionLogEntry(workOrderID shareddomain.ID, actor string, from, to Status, note string) WorkOrderLogEntry {
	return WorkOrderLogEntry{
		ID:          shareddomain.ID(utils.GenerateUUID()),
		WorkOrderID: workOrderID,
		Timestamp:   time.Now(),
		Actor:       actor,
		FromStatus:  &from,
		ToStatus:    to,
		Note:        note,
	}
}
