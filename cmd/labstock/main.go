// cmd/labstock/main.go
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/labsuite/labstock/internal/adapters/notify"
	redis_a "github.com/labsuite/labstock/internal/adapters/redis_adapter"
	"github.com/labsuite/labstock/internal/adapters/rest"
	"github.com/labsuite/labstock/internal/core/services"
	"github.com/labsuite/labstock/internal/core/store"
	"github.com/labsuite/labstock/internal/handlers"
	"github.com/labsuite/labstock/internal/handlers/middleware"
	"github.com/labsuite/labstock/internal/pkg/config"
	"github.com/labsuite/labstock/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting labstock gateway",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	cfg, err := config.Load(slogger.Logger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("api_base_url", cfg.API.BaseURL),
	)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddress(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
		PoolSize:     cfg.Redis.PoolSize,
	})
	defer redisClient.Close()

	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger.Logger)

	client := rest.NewClient(rest.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}, slogger.Logger)

	notifier := notify.New(slogger.Logger, 50)
	collection := store.New(client, notifier, slogger.Logger)
	dashboard := services.NewDashboardService(client, cache, slogger.Logger)

	componentHandler := handlers.NewComponentHandler(collection, slogger.Logger)
	exportHandler := handlers.NewExportHandler(client, cfg.Export.MaxRows, slogger.Logger)
	dashboardHandler := handlers.NewDashboardHandler(dashboard, slogger.Logger)
	healthHandler := handlers.NewHealthHandler(cache, Version, slogger.Logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /components", componentHandler.ListComponents)
	mux.HandleFunc("GET /components/table", componentHandler.ListTable)
	mux.HandleFunc("GET /components/{id}", componentHandler.GetComponent)
	mux.HandleFunc("POST /components", componentHandler.CreateComponent)
	mux.HandleFunc("PUT /components/{id}", componentHandler.UpdateComponent)
	mux.HandleFunc("PUT /components/{id}/quantity", componentHandler.UpdateQuantity)
	mux.HandleFunc("DELETE /components/{id}", componentHandler.DeleteComponent)
	mux.HandleFunc("GET /export", exportHandler.Export)
	mux.HandleFunc("GET /dashboard/stats", dashboardHandler.Stats)
	mux.HandleFunc("GET /dashboard/low-stock", dashboardHandler.LowStock)
	mux.HandleFunc("GET /lookups/categories", dashboardHandler.Categories)
	mux.HandleFunc("GET /lookups/locations", dashboardHandler.Locations)

	handler := middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logger(slogger),
		middleware.Recovery(slogger.Logger),
	)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}
	}

	slogger.Info("labstock gateway stopped")
}
