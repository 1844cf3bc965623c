package messaging

import (
	"kitchen-service/src/internal/model"
	"kitchen-service/src/pkg/kafka"
	"kitchen-service/src/pkg/log"
)

type OrderProducer struct {
	OrderCreatedProducer  Producer[*model.OrderEvent]
	StatusChangedProducer Producer[*model.OrderEvent]
	PaymentProducer       Producer[*model.PaymentEvent]
}

func NewOrderProducer(producer kafka.Producer, log log.Log) *OrderProducer {
	return &OrderProducer{
		OrderCreatedProducer: Producer[*model.OrderEvent]{
			Producer: producer,
			Topic:    "order-created",
			Log:      log,
		},
		StatusChangedProducer: Producer[*model.OrderEvent]{
			Producer: producer,
			Topic:    "order-status-changed",
			Log:      log,
		},
		PaymentProducer: Producer[*model.PaymentEvent]{
			Producer: producer,
			Topic:    "payment-updated",
			Log:      log,
		},
	}
}

func (p *OrderProducer) SendOrderCreated(event *model.OrderEvent) error {
	return p.OrderCreatedProducer.Send(event)
}

func (p *OrderProducer) SendStatusChanged(event *model.OrderEvent) error {
	return p.StatusChangedProducer.Send(event)
}

func (p *OrderProducer) SendPaymentUpdated(event *model.PaymentEvent) error {
	return p.PaymentProducer.Send(event)
}
