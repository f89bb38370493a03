package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"canteen/cmd"
	httpin "canteen/internal/adapters/in/http"
	"canteen/internal/adapters/out/messaging"
	"canteen/internal/adapters/out/postgres"
	"canteen/internal/adapters/out/postgres/migrations"
	"canteen/internal/core/ports"
	"canteen/internal/telemetry"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracerProvider(ctx, configs.OTLPEndpoint, configs.ServiceName, configs.ServiceVersion)
	if err != nil {
		log.Fatalf("Error initialising tracing: %v", err)
	}
	metricsHandler, shutdownMetrics, err := telemetry.InitMeterProvider(configs.ServiceName, configs.ServiceVersion)
	if err != nil {
		log.Fatalf("Error initialising metrics: %v", err)
	}

	if err := migrations.Up(configs.DatabaseURL()); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	gormDB, err := postgres.Open(configs.DSN(), configs.Pool())
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	publisher, closePublisher := newPublisher(configs, logger)

	app := cmd.NewCompositionRoot(configs, gormDB, publisher)

	jobManager, err := app.CreateJobManager(logger)
	if err != nil {
		log.Fatalf("Error creating jobs: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	handlers, err := app.HTTPHandlers()
	if err != nil {
		log.Fatalf("Error wiring handlers: %v", err)
	}
	e, err := httpin.NewEcho(httpin.NewServer(handlers, logger), metricsHandler, logger)
	if err != nil {
		log.Fatalf("Error building web server: %v", err)
	}

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting web server: %v", err)
		}
	}()
	logger.Info("canteen api started", "port", configs.HTTPPort)

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("web server shutdown failed", "error", err)
	}
	jobManager.StopAll()
	closePublisher()
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := shutdownMetrics(shutdownCtx); err != nil {
		logger.Error("metrics shutdown failed", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("tracing shutdown failed", "error", err)
	}
}

// newPublisher sends order events to Kafka when brokers are configured and
// to the log otherwise.
func newPublisher(configs cmd.Config, logger *slog.Logger) (ports.EventPublisher, func()) {
	if len(configs.KafkaBrokers) == 0 {
		return messaging.NewLogPublisher(logger), func() {}
	}

	publisher, err := messaging.NewPublisher(configs.KafkaBrokers, configs.KafkaOrderEventsTopic)
	if err != nil {
		log.Fatalf("Error creating kafka publisher: %v", err)
	}
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("kafka publisher close failed", "error", err)
		}
	}
}
