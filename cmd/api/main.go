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

	"github.com/go-api-selfservice/internal/application/notification"
	"github.com/go-api-selfservice/internal/config"
	jwtinfra "github.com/go-api-selfservice/internal/infrastructure/jwt"
	"github.com/go-api-selfservice/internal/infrastructure/smtp"
	"github.com/go-api-selfservice/internal/infrastructure/sns"
	"github.com/go-api-selfservice/internal/infrastructure/store"
	"github.com/go-api-selfservice/internal/logging"
	"github.com/go-api-selfservice/internal/metrics"
	"github.com/go-api-selfservice/internal/pkg/password"
	transporthttp "github.com/go-api-selfservice/internal/transport/http"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	defer stores.Close()

	// Only the public key is needed to verify; tokens are issued elsewhere.
	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		return fmt.Errorf("jwt provider: %w", err)
	}

	// SMS is optional; without SNS_REGION only email is attempted.
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(ctx, cfg); err == nil {
		smsSender = sender
	} else {
		logger.Warn("SNS sender not available", "err", err)
	}
	mailer := smtp.NewMailer(cfg)
	if mailer == nil {
		logger.Warn("SMTP not configured, security emails disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := &transporthttp.Deps{
		UserRepo:    stores.Users,
		SessionRepo: stores.Sessions,
		Verifier:    jwtProvider,
		Hasher:      password.NewBcrypt(cfg.BcryptCost),
		Notifier:    notification.NewNotifier(smsSender, mailer, logger),
		Metrics:     metrics.NewCollector(reg),
		Gatherer:    reg,
		Ready:       stores.Ping,
	}
	router := transporthttp.NewRouter(cfg, deps, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv, "store", stores.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
