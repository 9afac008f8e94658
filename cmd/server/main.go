package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/contafin/ledger/internal/adapter/http"
	"github.com/contafin/ledger/internal/adapter/http/handler"
	"github.com/contafin/ledger/internal/adapter/http/middleware"
	postgresRepo "github.com/contafin/ledger/internal/adapter/repository/postgres"
	redisRepo "github.com/contafin/ledger/internal/adapter/repository/redis"
	"github.com/contafin/ledger/internal/infrastructure/config"
	"github.com/contafin/ledger/internal/infrastructure/logger"
	"github.com/contafin/ledger/internal/infrastructure/metrics"
	"github.com/contafin/ledger/internal/infrastructure/postgres"
	"github.com/contafin/ledger/internal/infrastructure/redis"
	"github.com/contafin/ledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	log.Logger = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	ctx := context.Background()

	// Run migrations
	if cfg.MigrateOnStart {
		if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Connect to Redis. The engine runs without it, minus caching and
	// idempotency.
	var (
		cache            usecase.Cache
		idempotencyStore usecase.IdempotencyStore
	)
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, running without cache and idempotency")
		redisClient = nil
	} else {
		defer redisClient.Close()
		cache = redisRepo.NewCache(redisClient)
		idempotencyStore = redisRepo.NewIdempotencyStore(redisClient)
		log.Info().Msg("connected to redis")
	}

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	movementRepo := postgresRepo.NewMovementRepository(pool)
	auditRepo := postgresRepo.NewAuditRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()

	// Initialize use cases
	m := metrics.New()
	movementUC := usecase.NewMovementUseCase(txManager, movementRepo, auditRepo, idGen, cache, retrier, m)
	ledgerUC := usecase.NewLedgerUseCase(movementRepo, movementUC)
	queryUC := usecase.NewQueryUseCase(movementRepo, cache, cfg.StatsCacheTTL)

	// Repair stale balances left by a crash before serving traffic.
	if cfg.RepairOnStart {
		if err := ledgerUC.EnsureConsistent(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to verify ledger consistency")
		}
	}

	// Initialize handlers
	movementHandler := handler.NewMovementHandler(movementUC, queryUC)
	ledgerHandler := handler.NewLedgerHandler(queryUC, movementUC, ledgerUC)
	auditHandler := handler.NewAuditHandler(movementUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		MovementHandler:  movementHandler,
		LedgerHandler:    ledgerHandler,
		AuditHandler:     auditHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		IdempotencyTTL:   cfg.IdempotencyTTL,
		RateLimiter:      middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst),
		Logger:           log.Logger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
