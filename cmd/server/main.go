package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	ibanmodule "ibanguard/internal/iban"
	ibanmetrics "ibanguard/internal/iban/metrics"
	"ibanguard/internal/iban/service"
	"ibanguard/internal/iban/store"
	"ibanguard/internal/platform/config"
	"ibanguard/internal/platform/httpserver"
	"ibanguard/internal/platform/logger"
	"ibanguard/internal/platform/metrics"
	redisclient "ibanguard/internal/platform/redis"
	httptransport "ibanguard/internal/transport/http"
	"ibanguard/pkg/platform/circuit"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redis, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	if redis != nil {
		defer func() { _ = redis.Close() }()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	ibanService, err := ibanmodule.NewService(
		buildCache(cfg, redis, log),
		log,
		ibanmetrics.New(reg),
		service.WithBatchLimits(cfg.Batch.MaxItems, cfg.Batch.Concurrency),
	)
	if err != nil {
		log.Error("failed to build iban service", "error", err)
		os.Exit(1)
	}

	routerCfg := httptransport.RouterConfig{
		Logger:   log,
		Metrics:  metrics.New(reg),
		Gatherer: reg,
	}
	if redis != nil {
		routerCfg.Health = redis.Health
	}
	router := httptransport.NewRouter(routerCfg, ibanmodule.NewHandler(ibanService, log))

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("starting ibanguard", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

func buildCache(cfg config.Server, redis *redisclient.Client, log *slog.Logger) service.ResultCache {
	if redis == nil {
		log.Info("using in-memory result cache", "ttl", cfg.Cache.TTL)
		return store.NewInMemoryCache(cfg.Cache.TTL)
	}
	log.Info("using redis result cache", "ttl", cfg.Cache.TTL)
	return store.NewFallbackCache(
		store.NewRedisCache(redis.Client, cfg.Cache.TTL),
		store.NewInMemoryCache(cfg.Cache.TTL),
		circuit.New("iban-result-cache"),
		log,
	)
}
