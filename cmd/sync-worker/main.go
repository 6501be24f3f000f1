package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"gofinances/internal/amqp"
	"gofinances/internal/config"
	"gofinances/internal/kvstore"
	"gofinances/internal/ledger"
	applog "gofinances/internal/log"
	"gofinances/internal/sheets"
	"gofinances/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Component: "sync-worker"})
	applog.SetDefault(logger)

	logger.Info("Starting sync-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	if cfg.GoogleSpreadsheetID == "" {
		logger.Error("GOOGLE_SPREADSHEET_ID is required for the sheets mirror")
		os.Exit(1)
	}

	// The worker reads the same store the server writes, so it needs the
	// sqlite backend (memory stores are per-process).
	result, err := kvstore.Open(kvstore.Config{
		Type:         kvstore.BackendType(cfg.KVBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
	}, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize key-value store", "error", err, "backend", cfg.KVBackend)
		os.Exit(1)
	}
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Store cleanup failed", "error", err)
			}
		}()
	}

	exporter, err := sheets.NewExporterFromEnv(context.Background())
	if err != nil {
		logger.Error("Failed to initialize Google Sheets exporter", "error", err)
		os.Exit(1)
	}
	logger.Info("Google Sheets exporter initialized", "spreadsheet_id", cfg.GoogleSpreadsheetID)

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	mirror := worker.NewMirrorWorker(ledger.New(result.Store), exporter, cfg.ConsumeTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := amqpClient.ConsumeTransactionEvents(ctx, mirror.HandleTransactionEvent); err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Error("Event consumption failed", "error", err)
			os.Exit(1)
		}
	}
	logger.Info("Worker stopped gracefully")
}
