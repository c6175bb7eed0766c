package usecases

import (
	"predial-server/internal/infra/async"
	"predial-server/internal/infra/pubsub"
	"predial-server/internal/infra/utils"
)

const (
	// WorkOrderEventsTopic feeds the in-process broker and the websocket
	// stream.
	WorkOrderEventsTopic async.BrokerTopicName = "work_orders"

	// WorkOrdersStream is the external pubsub topic.
	WorkOrdersStream pubsub.Topic = "os"

	EventWorkOrderCreated       = "work_order_created"
	EventWorkOrderStatusChanged = "work_order_status_changed"
)

// WorkOrderEvent is the payload published for every creation and status
// change.
type WorkOrderEvent struct {
	Event         string     `json:"event"`
	WorkOrderID   string     `json:"work_order_id"`
	CondominiumID string     `json:"condominio_id"`
	Number        string     `json:"numero_os"`
	FromStatus    string     `json:"from_status,omitempty"`
	ToStatus      string     `json:"to_status"`
	Actor         string     `json:"actor,omitempty"`
	OccurredAt    utils.Time `json:"occurred_at"`
}
