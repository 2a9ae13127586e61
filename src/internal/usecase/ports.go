package usecase

import (
	"github.com/hibiken/asynq"

	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
)

// Interfaces for the fan-out collaborators so tests can observe or fail them.

type DashboardBroadcaster interface {
	OrderCreated(order *entity.Order) int
	StatusUpdated(event *model.OrderStatusEvent) int
}

type OrderEventProducer interface {
	SendOrderCreated(event *model.NewOrderEvent) error
	SendStatusUpdate(event *model.OrderStatusEvent) error
}

type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
