package main

import (
	"context"
	"fmt"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/config"
	outBoxRepository "github.com/tumbleweedd/campus_orders/order_notifier/internal/repository/outBox"
	outBoxSendService "github.com/tumbleweedd/campus_orders/order_notifier/internal/services/outBox/send"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/brokers/kafka/outbox_producer"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/databases/postgres"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

// outbox publishes token outbox rows that the service could not flush itself.
func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, log, cfg.Postgres.DSN())
	if err != nil {
		panic(fmt.Sprintf("failed connect to db: %v", err.Error()))
	}
	defer db.Close()

	syncProducer, err := outbox_producer.NewProducer(cfg.Kafka.BrokerList)
	if err != nil {
		panic(fmt.Sprintf("failed to create producer: %v", err.Error()))
	}
	defer syncProducer.Close()

	repo := outBoxRepository.New(log, db.GetDB())
	sender := outBoxSendService.New(log, cfg.Kafka.DeviceTokenTopic, syncProducer, repo, repo)

	sent, err := sender.Send(ctx)
	if err != nil {
		panic(fmt.Sprintf("produce messages error: %v", err.Error()))
	}

	log.Info("token outbox flushed", logger.Int("sent", sent))
}
