package httpapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	order_notifier_http "github.com/tumbleweedd/campus_orders/order_notifier/internal/delivery/http"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/ingestion"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

const readHeaderTimeout = 5 * time.Second

type App struct {
	log        logger.Logger
	httpServer *http.Server
	port       int
}

func NewApp(
	log logger.Logger,
	services order_notifier_http.Services,
	session *ingestion.AppState,
	gatherer prometheus.Gatherer,
	port int,
) *App {
	handler := order_notifier_http.NewHandler(log, services, session, gatherer)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler.InitRoutes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	// Shutdown waits for active requests; popup streams only end when the bus closes.
	httpServer.RegisterOnShutdown(session.Popups.Close)

	return &App{
		log:        log,
		httpServer: httpServer,
		port:       port,
	}
}

// Run blocks until the server stops. A graceful Stop is not an error.
func (a *App) Run() error {
	const op = "httpapp.run"

	log := a.log.With(logger.String("op", op), logger.Int("port", a.port))

	log.Info("starting http server")

	if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *App) Stop(ctx context.Context) error {
	const op = "httpapp.stop"

	log := a.log.With(logger.String("op", op))

	log.Info("stopping http server")

	return a.httpServer.Shutdown(ctx)
}
