package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"example.com/signup/internal/api"
	"example.com/signup/internal/config"
	"example.com/signup/internal/domain"
	"example.com/signup/internal/logger"
	"example.com/signup/internal/registry"
	httptransport "example.com/signup/internal/transport/http"
	"example.com/signup/internal/web"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	catalog, err := registry.DefaultCatalog()
	if err != nil {
		log.Fatal("failed to load seed catalog", zap.Error(err))
	}

	store, err := registry.New(catalog)
	if err != nil {
		log.Fatal("failed to build activity registry", zap.Error(err))
	}

	service := domain.NewService(store)
	handler := api.NewHandler(service)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/static/", http.FileServer(http.FS(web.Static)))
	mux.Handle("/metrics", promhttp.Handler())

	chain := api.RequestID(api.RequestLogger(log)(api.CORS(mux)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverCfg := httptransport.ServerConfig{
		Address:         cfg.HTTPAddress,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		IdleTimeout:     cfg.IdleTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}

	if err := httptransport.Run(ctx, serverCfg, chain, log); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
