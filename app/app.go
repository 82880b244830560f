package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/booklendiverse/booklend-service/config"
	"github.com/booklendiverse/booklend-service/internal/handler"
	"github.com/booklendiverse/booklend-service/internal/model"
	"github.com/booklendiverse/booklend-service/internal/repository"
	"github.com/booklendiverse/booklend-service/internal/server"
	"github.com/booklendiverse/booklend-service/internal/service"
	"github.com/booklendiverse/booklend-service/internal/service/gateway"
	"github.com/booklendiverse/booklend-service/migrations"
	"github.com/booklendiverse/booklend-service/pkg/kafka"
	"github.com/booklendiverse/booklend-service/pkg/logger"
	"github.com/booklendiverse/booklend-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "booklend")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewAsyncProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewAsyncProducer", zap.Error(err))
	}

	gw := gateway.New(cfg.Gateway, log)
	svc := service.NewService(repo, gw, producer, []byte(cfg.JWT.Secret), cfg.JWT.TokenTTL, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	go kafka.Consume(consumer, handler.NewConsumer(func(ctx context.Context, event kafka.EventStats) error {
		bookID := event.BookID
		var bookRef *int
		if bookID != 0 {
			bookRef = &bookID
		}
		return repo.InsertEvent(ctx, model.Event{
			Type:      event.Type,
			UserID:    event.UserID,
			BookID:    bookRef,
			Amount:    event.Amount,
			CreatedAt: event.At,
		})
	}, log), kafka.EventsTopic)

	h := handler.New(svc, svc, svc, svc, svc, svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter(handler.Config{
		JWTSecret:   []byte(cfg.JWT.Secret),
		AllowOrigin: cfg.CORS.AllowOrigin,
	}))
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
