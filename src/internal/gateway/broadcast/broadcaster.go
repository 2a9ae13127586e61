package broadcast

import (
	"github.com/bcaffe88/cardapio-completo/src/internal/entity"
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/pkg/pubsub"
)

// TopicDashboard is the single topic every dashboard client subscribes to.
// Per-restaurant scoping is a known limitation of the current design.
const TopicDashboard = "dashboard:orders"

// Broadcaster is the typed facade over the in-process hub.
type Broadcaster struct {
	Hub *pubsub.Hub
}

func NewBroadcaster(hub *pubsub.Hub) *Broadcaster {
	return &Broadcaster{Hub: hub}
}

func (b *Broadcaster) OrderCreated(order *entity.Order) int {
	return b.Hub.Publish(TopicDashboard, pubsub.Event{
		Name:    model.EventNewOrder,
		Payload: order,
	})
}

func (b *Broadcaster) StatusUpdated(event *model.OrderStatusEvent) int {
	return b.Hub.Publish(TopicDashboard, pubsub.Event{
		Name:    model.EventOrderStatusUpdate,
		Payload: event,
	})
}

func (b *Broadcaster) Subscribe() *pubsub.Subscription {
	return b.Hub.Subscribe(TopicDashboard)
}

func (b *Broadcaster) Unsubscribe(sub *pubsub.Subscription) {
	b.Hub.Unsubscribe(sub)
}
