package service

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/booklendiverse/booklend-service/internal/repository"
	"github.com/booklendiverse/booklend-service/internal/service/gateway"
	"github.com/booklendiverse/booklend-service/pkg/kafka"
)

type Service struct {
	repo     repository.Repository
	gw       gateway.Gateway
	producer sarama.AsyncProducer
	log      *zap.Logger

	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewService(
	repo repository.Repository,
	gw gateway.Gateway,
	producer sarama.AsyncProducer,
	jwtSecret []byte,
	tokenTTL time.Duration,
	log *zap.Logger,
) *Service {
	return &Service{
		repo:      repo,
		gw:        gw,
		producer:  producer,
		log:       log.Named("svc"),
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// publish emits a domain event off the request path. Events feed the stats
// consumer; losing one on producer shutdown is acceptable.
func (s *Service) publish(e kafka.EventStats) {
	if s.producer == nil {
		return
	}
	e.At = time.Now()
	data, err := json.Marshal(e)
	if err != nil {
		s.log.Error("marshal event", zap.Error(err))
		return
	}
	s.producer.Input() <- &sarama.ProducerMessage{
		Topic: kafka.EventsTopic,
		Value: sarama.ByteEncoder(data),
	}
}
