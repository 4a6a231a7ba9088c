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

	"github.com/joho/godotenv"

	"github.com/fernweh/api/internal/config"
	"github.com/fernweh/api/internal/directory"
	"github.com/fernweh/api/internal/gateway"
	"github.com/fernweh/api/internal/handler"
	"github.com/fernweh/api/internal/jobs"
	"github.com/fernweh/api/internal/middleware"
	"github.com/fernweh/api/internal/service"
	"github.com/fernweh/api/internal/storage"
)

func main() {
	// A .env file is optional; deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the snapshot store
	store, err := storage.OpenSQLite(storage.SQLiteConfig{
		Path: cfg.Snapshot.DBPath,
		Keep: cfg.Snapshot.Keep,
	})
	if err != nil {
		slog.Error("failed to open snapshot store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	slog.Info("snapshot store ready", slog.String("path", cfg.Snapshot.DBPath))

	// Build the directory, restoring the latest snapshot when one exists.
	// A corrupt snapshot aborts startup rather than silently losing data.
	dir := directory.New()

	ctx := context.Background()
	snap, err := store.LoadLatest(ctx)
	switch {
	case err == nil:
		if err := dir.Restore(ctx, snap); err != nil {
			slog.Error("failed to restore snapshot", slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Info("directory restored", slog.Int("users", len(snap.Users)))
	case errors.Is(err, storage.ErrNoSnapshot):
		slog.Info("no snapshot found, starting empty")
	default:
		slog.Error("failed to load snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize the geocoding and place search client
	maps := gateway.NewClient(gateway.Config{
		APIKey:           cfg.Maps.APIKey,
		BaseURL:          cfg.Maps.BaseURL,
		Timeout:          cfg.Maps.Timeout,
		BiasRadiusMeters: cfg.Maps.BiasRadiusMeters,
	})

	// Initialize services
	userService := service.NewUserService(service.UserServiceConfig{
		Users:          dir,
		Geocoder:       maps,
		GatewayTimeout: cfg.Maps.Timeout,
	})

	activityService := service.NewActivityService(service.ActivityServiceConfig{
		Directory:      dir,
		Finder:         maps,
		GatewayTimeout: cfg.Maps.Timeout,
		BiasRadiusKm:   float64(cfg.Maps.BiasRadiusMeters) / 1000,
	})

	planService := service.NewPlanService(service.PlanServiceConfig{
		Directory: dir,
	})

	// Initialize idempotency store
	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL:     24 * time.Hour,
		Cleanup: time.Hour,
	})
	defer idempotencyStore.Stop()

	// Persist the directory in the background
	snapshotWriter := jobs.NewSnapshotWriter(dir, store, cfg.Snapshot.Interval)
	snapshotWriter.Start()

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	activityHandler := handler.NewActivityHandler(activityService)
	planHandler := handler.NewPlanHandler(planService)
	healthHandler := handler.NewHealthHandler(store)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Homebase endpoints
	mux.HandleFunc("POST /v1/homebase", userHandler.RegisterHomebase)
	mux.HandleFunc("PUT /v1/users/{userId}/homebase", userHandler.UpdateHomebase)

	// User endpoints
	mux.HandleFunc("GET /v1/users", userHandler.List)
	mux.HandleFunc("GET /v1/users/{userId}", userHandler.Get)

	// Activity group endpoints
	mux.HandleFunc("POST /v1/users/{userId}/groups", activityHandler.CreateGroup)
	mux.HandleFunc("GET /v1/users/{userId}/groups", activityHandler.ListGroups)
	mux.HandleFunc("GET /v1/users/{userId}/groups/{group}", activityHandler.GetGroup)
	mux.HandleFunc("DELETE /v1/users/{userId}/groups/{group}", activityHandler.DeleteGroup)

	// Place endpoints
	mux.HandleFunc("POST /v1/users/{userId}/groups/{group}/places", activityHandler.AddPlace)
	mux.HandleFunc("GET /v1/users/{userId}/places", activityHandler.ListPlaces)
	mux.HandleFunc("DELETE /v1/users/{userId}/groups/{group}/places/{placeId}", activityHandler.RemovePlace)

	// Daily plan endpoints
	mux.HandleFunc("GET /v1/users/{userId}/plans", planHandler.List)
	mux.HandleFunc("GET /v1/users/{userId}/plans/{planId}", planHandler.Get)
	mux.HandleFunc("PUT /v1/users/{userId}/plans/{planId}/places", planHandler.AddStop)
	mux.HandleFunc("DELETE /v1/users/{userId}/plans/{planId}/places/{placeId}", planHandler.RemoveStop)
	mux.HandleFunc("GET /v1/users/{userId}/plans/{planId}/route", planHandler.Route)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS([]string{cfg.Server.AllowedOrigin}),
		middleware.Idempotency(idempotencyStore),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("addr", cfg.Addr()),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	// Stop the writer, then flush whatever changed since the last cycle
	snapshotWriter.Stop()
	if err := snapshotWriter.RunOnce(shutdownCtx); err != nil {
		slog.Error("final snapshot failed", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
