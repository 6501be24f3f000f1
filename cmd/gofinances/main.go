package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"gofinances/internal/amqp"
	"gofinances/internal/auth"
	"gofinances/internal/config"
	apphttp "gofinances/internal/http"
	"gofinances/internal/kvstore"
	"gofinances/internal/ledger"
	applog "gofinances/internal/log"
	"gofinances/internal/services"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{Component: "gofinances"})
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

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

	// Google sign-in needs OAuth client credentials; without them the
	// session still works for Apple sign-in and restores.
	var google auth.GoogleProvider
	if cfg.GoogleOAuthClientJSON != "" || cfg.GoogleOAuthClientFile != "" {
		provider, err := auth.NewGoogleProviderFromEnv()
		if err != nil {
			logger.Error("Failed to initialize Google sign-in provider", "error", err)
			os.Exit(1)
		}
		google = provider
		logger.Info("Google sign-in provider initialized")
	} else {
		logger.Info("Google sign-in disabled - no OAuth client credentials provided")
	}

	// The AMQP broker is optional: registrations still persist without it,
	// only the sheets mirror stops receiving events.
	var events services.EventPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", "error", err)
		} else {
			events = client
			logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange)
		}
	}

	session := auth.NewSession(result.Store, google, nil)
	if err := session.Load(context.Background()); err != nil {
		logger.Error("Failed to restore session", "error", err)
		os.Exit(1)
	}

	svc := services.NewFinanceService(session, ledger.New(result.Store), events)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Error("Service shutdown error", "error", err)
		}
	}()

	srv := apphttp.NewServer(":"+cfg.Port, svc)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting gofinances server", "port", cfg.Port, "backend", cfg.KVBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
