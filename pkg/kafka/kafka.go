package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	EventsTopic        = "booklend-events"
	StatsConsumerGroup = "booklend-stats"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

// EventStats is a domain event published for the audit trail.
type EventStats struct {
	Type   string    `json:"type"`
	UserID int       `json:"userId"`
	BookID int       `json:"bookId,omitempty"`
	Amount float64   `json:"amount,omitempty"`
	At     time.Time `json:"at"`
}

const (
	EventBorrowRequested  = "borrow_requested"
	EventBookReturned     = "book_returned"
	EventReturnAccepted   = "return_accepted"
	EventPaymentCompleted = "payment_completed"
)

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume runs the consumer-group session loop until the group is closed.
func Consume(consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) {
	log := zap.L().Named("kafka")
	ctx := context.Background()
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			if err == sarama.ErrClosedConsumerGroup {
				return
			}
			log.Error("consume", zap.Error(err))
			time.Sleep(time.Second)
		}
	}
}
