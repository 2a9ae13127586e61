package model

// Event is anything the messaging gateway can publish.
type Event interface {
	GetId() string
}

// Realtime / Kafka event names.
const (
	EventNewOrder          = "new_order"
	EventOrderStatusUpdate = "order_status_update"
	EventInitialOrders     = "initial_orders"
)
