// Command till runs the cashier's console till against the canteen database.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"canteen/cmd"
	"canteen/internal/adapters/in/console"
	"canteen/internal/adapters/out/messaging"
	"canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/migrations"

	"github.com/labstack/gommon/log"
)

func main() {
	// Logs go to stderr at warning level so they stay out of the till screen.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err := migrations.Up(configs.DatabaseURL()); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	gormDB, err := postgres.Open(configs.DSN(), configs.Pool())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	defer func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	app := cmd.NewCompositionRoot(configs, gormDB, messaging.NewLogPublisher(logger))

	deps, err := app.TillDependencies()
	if err != nil {
		log.Fatalf("Error wiring till: %v", err)
	}
	till, err := console.NewTill(deps, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("Error creating till: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := till.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Till stopped: %v", err)
	}
}
