package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jothamO/makemoments-checkout-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) PublishOrderCreated(event domain.OrderCreatedEvent) error {
	return k.publish(event.OrderID, "order.created", event)
}

func (k *KafkaPublisher) PublishOrderSettled(event domain.OrderSettledEvent) error {
	return k.publish(event.OrderID, "order.settled", event)
}

func (k *KafkaPublisher) publish(key, eventType string, payload interface{}) error {
	msg, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(key),
		Value: msg,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
