package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tumbleweedd/campus_orders/order_notifier/internal/app"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/config"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.NewApp(ctx, log, &cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create app: %v", err))
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- application.Run(ctx)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-stop:
		log.Info("received signal", logger.String("signal", sig.String()))
		cancel()
		err = <-runErr
	case err = <-runErr:
	}

	if err != nil {
		log.Error("application failed", logger.Err(err))
	}

	if err = application.Stop(); err != nil {
		panic(fmt.Sprintf("failed to stop app: %v", err))
	}

	log.Info("application stopped")
}
