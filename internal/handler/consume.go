package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/booklendiverse/booklend-service/pkg/kafka"
)

type eventSink func(ctx context.Context, event kafka.EventStats) error

// Consumer drains the events topic into the audit store.
type Consumer struct {
	sink  eventSink
	log   *zap.Logger
	ready chan bool
}

func NewConsumer(sink eventSink, log *zap.Logger) *Consumer {
	return &Consumer{
		sink:  sink,
		log:   log.Named("consumer"),
		ready: make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	close(consumer.ready)
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.EventStats
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.sink(context.Background(), event); err != nil {
				// not marked: the event is retried on the next session
				consumer.log.Error("consumer.sink", zap.Error(err))
				continue
			}

			consumer.log.Debug("message claimed",
				zap.String("value", string(message.Value)),
				zap.Time("timestamp", message.Timestamp),
				zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
