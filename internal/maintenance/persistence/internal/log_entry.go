package internal

import (
	"time"

	"predial-server/internal/maintenance/domain"
	shareddomain "predial-server/internal/shared_kernel/domain"
)

type WorkOrderLogEntry struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	WorkOrderID string    `json:"os_id" gorm:"column:os_id;index;not null"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null"`
	Actor       string    `json:"actor"`
	FromStatus  *string   `json:"from_status"`
	ToStatus    string    `json:"to_status" gorm:"not null"`
	Note        string    `json:"note"`
}

func (WorkOrderLogEntry) TableName() string {
	return "os_logs"
}

func (e WorkOrderLogEntry) ToDomain() domain.WorkOrderLogEntry {
	var fromStatus *domain.Status
	if e.FromStatus != nil {
		status := domain.Status(*e.FromStatus)
		fromStatus = &status
	}

	return domain.WorkOrderLogEntry{
		ID:          shareddomain.ID(e.ID),
		WorkOrderID: shareddomain.ID(e.WorkOrderID),
		Timestamp:   e.Timestamp,
		Actor:       e.Actor,
		FromStatus:  fromStatus,
		ToStatus:    domain.Status(e.ToStatus),
		Note:        e.Note,
	}
}

func FromWorkOrderLogEntry(value domain.WorkOrderLogEntry) WorkOrderLogEntry {
	var fromStatus *string
	if value.FromStatus != nil {
		status := string(*value.FromStatus)
		fromStatus = &status
	}

	return WorkOrderLogEntry{
		ID:          value.ID.String(),
		WorkOrderID: value.WorkOrderID.String(),
		Timestamp:   value.Timestamp,
		Actor:       value.Actor,
		FromStatus:  fromStatus,
		ToStatus:    string(value.ToStatus),
		Note:        value.Note,
	}
}
