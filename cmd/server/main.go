package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/openbooks/openbooks/internal/adapter/http"
	"github.com/openbooks/openbooks/internal/adapter/http/handler"
	"github.com/openbooks/openbooks/internal/adapter/http/middleware"
	postgresRepo "github.com/openbooks/openbooks/internal/adapter/repository/postgres"
	redisRepo "github.com/openbooks/openbooks/internal/adapter/repository/redis"
	"github.com/openbooks/openbooks/internal/infrastructure/config"
	"github.com/openbooks/openbooks/internal/infrastructure/logger"
	"github.com/openbooks/openbooks/internal/infrastructure/metrics"
	"github.com/openbooks/openbooks/internal/infrastructure/postgres"
	"github.com/openbooks/openbooks/internal/infrastructure/redis"
	"github.com/openbooks/openbooks/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	if err := postgres.RunMigrations(cfg.DatabaseURL, "migrations"); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, caching and idempotency disabled")
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info().Msg("connected to redis")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	txManager := postgresRepo.NewTxManager(pool)
	businessRepo := postgresRepo.NewBusinessRepository(pool)
	accountRepo := postgresRepo.NewAccountRepository(pool)
	typeRepo := postgresRepo.NewAccountTypeRepository(pool)
	txnRepo := postgresRepo.NewTransactionRepository(pool)
	entryRepo := postgresRepo.NewEntryRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier(appLogger)

	var (
		cache            usecase.Cache
		idempotencyStore usecase.IdempotencyStore
	)
	if redisClient != nil {
		cache = redisRepo.NewCache(redisClient)
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
	}

	businessUC := usecase.NewBusinessUseCase(businessRepo, idGen, appMetrics)
	accountUC := usecase.NewAccountUseCase(accountRepo, typeRepo, businessRepo, idGen, cache, appMetrics)
	balanceUC := usecase.NewBalanceUseCase(txManager, accountRepo, entryRepo, appMetrics)
	postingUC := usecase.NewPostingUseCase(txManager, businessRepo, accountRepo, txnRepo, entryRepo, balanceUC, retrier, appMetrics)
	journalUC := usecase.NewJournalUseCase(txnRepo, appLogger)

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(postingUC, journalUC, balanceUC),
		AccountHandler:     handler.NewAccountHandler(accountUC),
		BusinessHandler:    handler.NewBusinessHandler(businessUC),
		HealthHandler:      handler.NewHealthHandler(pool, redisClient),
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		MetricsMiddleware:  middleware.NewMetricsMiddleware(appMetrics),
		LoggingMiddleware:  middleware.NewLoggingMiddleware(appLogger),
		RateLimiter:        middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		IdempotencyStore:   idempotencyStore,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
