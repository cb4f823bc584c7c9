package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/tumbleweedd/campus_orders/order_notifier/internal/config"
	"github.com/tumbleweedd/campus_orders/order_notifier/pkg/logger"
)

func main() {
	var migrationsPath string
	var down bool

	flag.StringVar(&migrationsPath, "migrations-path", "", "path to migrations")
	flag.BoolVar(&down, "down", false, "roll back every migration")

	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env))

	if migrationsPath == "" {
		migrationsPath = os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			migrationsPath = "./migrations"
		}
	}

	m, err := migrate.New("file://"+migrationsPath, cfg.Postgres.URL())
	if err != nil {
		panic(fmt.Sprintf("failed to create migrator: %v", err))
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("no migrations to apply")
			return
		}
		panic(err)
	}

	log.Info("migrations applied", logger.String("path", migrationsPath), logger.Bool("down", down))
}
