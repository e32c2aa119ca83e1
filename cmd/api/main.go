package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	apppokemon "pokedex/internal/app/pokemon"
	"pokedex/internal/cache"
	"pokedex/internal/clients/funtranslations"
	"pokedex/internal/clients/pokeapi"
	"pokedex/internal/config"
	"pokedex/internal/http/handlers/health"
	pokemonhandler "pokedex/internal/http/handlers/pokemon"
	"pokedex/internal/http/router"
	"pokedex/internal/kafka"
	"pokedex/internal/logging"
	"pokedex/internal/telemetry"
)

func main() {
	// Top-level context with graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1) Load configuration (.env is optional, real env wins)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2) Initialize logger
	logger := logging.New(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceEnv,
	)

	logger.Info("starting service",
		"env", cfg.Environment,
	)

	// 3) Initialize telemetry (OpenTelemetry)
	if cfg.Observability.Enabled {
		otelShutdown, err := telemetry.Setup(ctx, cfg.Observability, logger)
		if err != nil {
			logger.Error("failed to setup telemetry", "error", err)
			os.Exit(1)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				logger.Error("failed to shutdown telemetry", "error", err)
			}
		}()
	}

	// 4) Response cache (in-process by default, Redis when configured)
	var responseCache cache.ResponseCache
	switch cfg.Cache.Driver {
	case "redis":
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Error("failed to init redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("failed to close redis", "error", err)
			}
		}()
		responseCache = cache.NewRedis(redisClient, cfg.Cache.TTL, logger)
	default:
		responseCache = cache.NewMemory(cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}

	// 5) Kafka bus for lookup events (no-op when disabled)
	bus, closeBus, err := kafka.NewBus(cfg.Kafka, logger)
	if err != nil {
		logger.Error("failed to init kafka bus", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = closeBus(context.Background())
	}()

	// 6) Upstream clients. Only the translation client carries a retry
	// policy; the species client intentionally has none.
	speciesClient, err := pokeapi.New(cfg.PokeAPI.BaseURL, cfg.PokeAPI.Timeout, logger)
	if err != nil {
		logger.Error("failed to init pokeapi client", "error", err)
		os.Exit(1)
	}

	retryPolicy := funtranslations.RetryPolicy{
		MaxAttempts: cfg.FunTranslations.MaxAttempts,
		BaseDelay:   cfg.FunTranslations.RetryBaseDelay,
		MaxDelay:    cfg.FunTranslations.RetryMaxDelay,
	}
	translationClient, err := funtranslations.New(cfg.FunTranslations.BaseURL, cfg.FunTranslations.Timeout, retryPolicy, logger)
	if err != nil {
		logger.Error("failed to init funtranslations client", "error", err)
		os.Exit(1)
	}

	// 7) Services
	pokemonEvents := kafka.NewPokemonEvents(bus, cfg.Kafka, logger)
	pokemonService := apppokemon.NewService(
		speciesClient,
		translationClient,
		cfg.PokeAPI.Language,
		pokemonEvents,
		logger,
	)

	// 8) HTTP handlers
	healthHandler := health.NewHandler(cfg.PokeAPI.BaseURL, cfg.FunTranslations.BaseURL)
	pokemonHandler := pokemonhandler.NewHandler(pokemonService, responseCache, logger)

	// 9) HTTP router
	httpRouter := router.NewRouter(
		logger,
		cfg.HTTP.ThrottleLimit,
		healthHandler,
		pokemonHandler,
	)

	// 10) HTTP server
	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: otelhttp.NewHandler(
			httpRouter,
			cfg.Observability.ServiceName,
		),
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting",
			"host", cfg.HTTP.Host,
			"port", cfg.HTTP.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 11) Wait for shutdown signal or an error
	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		logger.Error("fatal error from http server", "error", err)
		stop()
	}

	// 12) Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", "error", err)
	}

	logger.Info("service stopped")
}
