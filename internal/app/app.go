package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/facebookgo/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	httpapp "github.com/tumbleweedd/campus_orders/order_notifier/internal/app/http"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/cache_impl"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/config"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/dedup"
	order_notifier_http "github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http"
	kafkaDelivery "github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/kafka"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/ingestion"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/metrics"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/notification/presenter"
	orderRepository "github.com/tumbleweedd/campus_orders/order_notifier/internal/repository/order"
	outBoxRepository "github.com/tumbleweedd/campus_orders/order_notifier/internal/repository/outBox"
	orderRetrievalService "github.com/tumbleweedd/campus_orders/order_notifier/internal/services/order/get"
	orderRefreshService "github.com/tumbleweedd/campus_orders/order_notifier/internal/services/order/refresh"
	orderTransitionService "github.com/tumbleweedd/campus_orders/order_notifier/internal/services/order/transition"
	outBoxSendService "github.com/tumbleweedd/campus_orders/order_notifier/internal/services/outBox/send"
	tokenService "github.com/tumbleweedd/campus_orders/order_notifier/internal/services/token"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/brokers/kafka/outbox_producer"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/brokers/kafka/producer"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/databases/postgres"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const (
	surfaceKafka = "kafka"
	surfaceLog   = "log"

	shutdownTimeout = 10 * time.Second
)

type App struct {
	log logger.Logger

	HTTPServer *httpapp.App

	db           *postgres.PgDB
	syncProducer sarama.SyncProducer
	surface      presenter.Surface
	consumer     *kafkaDelivery.Consumer
	refresher    *orderRefreshService.Service
	outBoxSender *outBoxSendService.Service
}

func NewApp(ctx context.Context, log logger.Logger, cfg *config.Config) (*App, error) {
	const op = "app.NewApp"

	a := &App{log: log}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	clk := clock.New()

	db, err := postgres.NewPostgresDB(ctx, log, cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.db = db

	surface, err := setupSurface(log, cfg)
	if err != nil {
		_ = a.Stop()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a.surface = surface

	a.syncProducer, err = outbox_producer.NewProducer(cfg.Kafka.BrokerList)
	if err != nil {
		_ = a.Stop()
		return nil, fmt.Errorf("%s: outbox producer: %w", op, err)
	}

	group, err := kafkaDelivery.NewConsumerGroup(cfg.Kafka.BrokerList, cfg.Kafka.ConsumerGroup)
	if err != nil {
		_ = a.Stop()
		return nil, fmt.Errorf("%s: consumer group: %w", op, err)
	}

	// Orders.
	orderRepo := orderRepository.NewOrderRepository(log, cfg.Backend.BaseURL, cfg.Backend.Timeout)
	cache := cache_impl.NewExpirableCache(log, cfg.Cache.Size, cfg.Cache.TTL)

	// Notifications.
	notificationPresenter := presenter.New(log, surface)
	ingestionHandler := ingestion.NewHandler(log, dedup.New(clk, cfg.Dedup.TTL), notificationPresenter, cache, appMetrics, clk)
	dispatcher := ingestion.NewDispatcher(log, ingestionHandler)
	session := ingestion.NewAppState()

	a.consumer = kafkaDelivery.NewConsumer(log, group, cfg.Kafka.RealtimeTopic, dispatcher)

	orderRetrievalSvc := orderRetrievalService.New(log, cache, orderRepo)
	orderTransitionSvc := orderTransitionService.New(log, clk, appMetrics, cache, orderRetrievalSvc, orderRepo)
	a.refresher = orderRefreshService.New(log, orderRetrievalSvc, cfg.Refresh.ShopIDs, cfg.Refresh.Interval)

	// Push tokens.
	outBoxRepo := outBoxRepository.New(log, db.GetDB())
	a.outBoxSender = outBoxSendService.New(log, cfg.Kafka.DeviceTokenTopic, a.syncProducer, outBoxRepo, outBoxRepo)
	tokenSvc := tokenService.New(log, appMetrics, outBoxRepo, a.outBoxSender)

	a.HTTPServer = httpapp.NewApp(
		log,
		order_notifier_http.Services{
			OrderGetter:       orderRetrievalSvc,
			OrderTransitioner: orderTransitionSvc,
			Dispatcher:        dispatcher,
			TokenRegistrar:    tokenSvc,
		},
		session,
		registry,
		cfg.HTTP.Port,
	)

	return a, nil
}

// Run starts every long-running component and blocks until ctx is cancelled or one
// of them fails.
func (a *App) Run(ctx context.Context) error {
	const op = "app.Run"

	g, gctx := errgroup.WithContext(ctx)

	g.Go(a.HTTPServer.Run)

	g.Go(func() error {
		return a.consumer.Run(gctx)
	})

	g.Go(func() error {
		return a.refresher.Run(gctx)
	})

	g.Go(func() error {
		// Rows left behind by a previous run.
		sent, err := a.outBoxSender.Send(gctx)
		if err != nil {
			a.log.Warn(op, logger.String("startup outbox flush failed", err.Error()))
			return nil
		}

		a.log.Info(op, logger.Int("outbox_sent", sent))

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return a.HTTPServer.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Stop releases brokers and the database. It is safe to call on a partially built App.
func (a *App) Stop() error {
	var errs []error

	if a.consumer != nil {
		errs = append(errs, a.consumer.Close())
	}

	if closer, ok := a.surface.(interface{ Close() error }); ok {
		errs = append(errs, closer.Close())
	}

	if a.syncProducer != nil {
		errs = append(errs, a.syncProducer.Close())
	}

	if a.db != nil {
		errs = append(errs, a.db.Close())
	}

	a.log.Info("app stopped")

	return errors.Join(errs...)
}

func setupSurface(log logger.Logger, cfg *config.Config) (presenter.Surface, error) {
	switch cfg.Surface.Kind {
	case surfaceKafka:
		asyncProducer, err := producer.NewAsyncProducer(cfg.Kafka.BrokerList)
		if err != nil {
			return nil, fmt.Errorf("notification producer: %w", err)
		}

		return producer.NewProducer(log, asyncProducer, cfg.Kafka.NotificationsTopic), nil
	case surfaceLog, "":
		return presenter.NewLogSurface(log), nil
	default:
		return nil, fmt.Errorf("unknown surface kind %q", cfg.Surface.Kind)
	}
}
