package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"regguard/internal/audit"
	"regguard/internal/platform/config"
	"regguard/internal/platform/httpserver"
	"regguard/internal/platform/logger"
	"regguard/internal/sanctions/cache"
	"regguard/internal/sanctions/fetcher"
	"regguard/internal/sanctions/handler"
	"regguard/internal/sanctions/metrics"
	"regguard/internal/sanctions/service"
	"regguard/pkg/platform/middleware/requestid"
)

// main wires the screening engine behind a small HTTP surface and keeps the
// server lifecycle here. Business logic lives under internal/sanctions.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	sdnCache, err := cache.New(
		fetcher.New(fetcher.WithLogger(log)),
		cache.WithLogger(log),
		cache.WithMetrics(m),
	)
	if err != nil {
		log.Error("cache init failed", "error", err)
		os.Exit(1)
	}

	auditTrail := audit.NewPublisher(
		audit.NewMemoryStore(),
		audit.WithAsyncBuffer(256),
		audit.WithLogger(log),
	)
	defer auditTrail.Close()

	checker, err := service.New(sdnCache,
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithAudit(auditTrail),
	)
	if err != nil {
		log.Error("checker init failed", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	handler.New(checker, log).Register(r)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, r)

	log.Info("starting regguard", "addr", cfg.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
