package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	amqp "github.com/streadway/amqp"
)

// OrderCreated is the body of an order.created event.
type OrderCreated struct {
	OrderID   string `json:"or_id"`
	ProductID string `json:"or_pd_id"`
	Amount    int64  `json:"or_amount"`
}

// OrderEventLogger returns a handler that decodes order.created events and logs them.
func OrderEventLogger(log logrus.FieldLogger) func(amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		var event OrderCreated
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return fmt.Errorf("failed to decode %s event: %w", msg.RoutingKey, err)
		}
		log.WithFields(logrus.Fields{
			"event":     msg.RoutingKey,
			"or_id":     event.OrderID,
			"or_pd_id":  event.ProductID,
			"or_amount": event.Amount,
		}).Info("order event received")
		return nil
	}
}
