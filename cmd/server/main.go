// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in the internal services.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadgate/internal/audit"
	"leadgate/internal/intake/handler"
	"leadgate/internal/intake/service"
	"leadgate/internal/intake/store"
	"leadgate/internal/notify"
	"leadgate/internal/payment"
	"leadgate/internal/platform/config"
	"leadgate/internal/platform/httpserver"
	"leadgate/internal/platform/logger"
	"leadgate/internal/platform/metrics"
	"leadgate/internal/platform/middleware"
	"leadgate/internal/platform/redis"
	httptransport "leadgate/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "leadgate:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.NewDefault()

	// Record store: Postgres when configured, otherwise in-memory so
	// development runs without infrastructure.
	var (
		st          store.Store
		storeHealth httptransport.HealthChecker
	)
	if cfg.Database.URL != "" {
		pg, err := store.NewPostgres(ctx, cfg.Database.URL)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pg.Close()
		if err := pg.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		st = pg
		storeHealth = pg
		log.Info("record store ready", "backend", "postgres")
	} else {
		st = store.NewInMemory()
		log.Warn("DATABASE_URL not set, using in-memory record store")
	}

	// Rate limiter: optional, keyed by client IP.
	var limiter middleware.Limiter
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		if l := redis.NewFixedWindowLimiter(redisClient, cfg.Intake.RateLimitPerMinute); l != nil {
			limiter = l
			log.Info("rate limiting enabled", "per_minute", cfg.Intake.RateLimitPerMinute)
		}
	}

	// Submission trail: Kafka when brokers are configured.
	var sink audit.Sink = audit.NewMemorySink()
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink, err := audit.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			return fmt.Errorf("connect kafka: %w", err)
		}
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := kafkaSink.Close(closeCtx); err != nil {
				log.Warn("kafka close", "error", err)
			}
		}()
		sink = kafkaSink
		log.Info("submission trail ready", "topic", cfg.Kafka.Topic)
	}

	gateway := payment.NewStripeGateway(cfg.Payment.StripeSecretKey, cfg.Payment.CallbackBaseURL)
	brevo := notify.NewBrevo(cfg.Email)
	dispatcher := notify.NewDispatcher(log, m)

	svc := service.New(service.Deps{
		Store:         st,
		Gateway:       gateway,
		Email:         brevo,
		SMS:           brevo,
		Dispatcher:    dispatcher,
		Trail:         audit.NewPublisher(sink, log),
		Metrics:       m,
		Logger:        log,
		OperatorEmail: cfg.Email.OperatorEmail,
	})

	router := httptransport.NewRouter(httptransport.Options{
		Intake:  handler.New(svc, log),
		Limiter: limiter,
		Store:   storeHealth,
		Logger:  log,
	})

	srv := httpserver.New(cfg.Server, router)

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting leadgate", "addr", cfg.Server.Addr, "environment", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	// Let in-flight notifications drain before the process exits.
	dispatcher.Wait()
	log.Info("shutdown complete")
	return nil
}
