package model

import (
	"strconv"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
)

// NewOrderEvent carries the full persisted order.
type NewOrderEvent struct {
	Order *entity.Order `json:"order"`
}

func (e *NewOrderEvent) GetId() string {
	if e.Order == nil {
		return ""
	}
	return strconv.FormatInt(e.Order.ID, 10)
}

// OrderStatusEvent is the old -> new delta emitted on every status change.
type OrderStatusEvent struct {
	ID        int64              `json:"id"`
	OldStatus entity.OrderStatus `json:"old_status"`
	NewStatus entity.OrderStatus `json:"new_status"`
}

func (e *OrderStatusEvent) GetId() string {
	return strconv.FormatInt(e.ID, 10)
}
