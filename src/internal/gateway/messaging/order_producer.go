package messaging

import (
	"github.com/bcaffe88/cardapio-completo/src/internal/model"
	"github.com/bcaffe88/cardapio-completo/src/pkg/kafka"
	"github.com/bcaffe88/cardapio-completo/src/pkg/log"
)

// OrderProducer mirrors the realtime channel onto Kafka topics for external
// consumers (BI, platform reconciliation).
type OrderProducer struct {
	CreatedProducer      Producer[*model.NewOrderEvent]
	StatusUpdateProducer Producer[*model.OrderStatusEvent]
}

func NewOrderProducer(producer kafka.Producer, logger log.Log) *OrderProducer {
	return &OrderProducer{
		CreatedProducer: Producer[*model.NewOrderEvent]{
			Producer: producer,
			Topic:    "order-created",
			Log:      logger,
		},
		StatusUpdateProducer: Producer[*model.OrderStatusEvent]{
			Producer: producer,
			Topic:    "order-status-updated",
			Log:      logger,
		},
	}
}

func (p *OrderProducer) SendOrderCreated(event *model.NewOrderEvent) error {
	return p.CreatedProducer.Send(event)
}

func (p *OrderProducer) SendStatusUpdate(event *model.OrderStatusEvent) error {
	return p.StatusUpdateProducer.Send(event)
}
