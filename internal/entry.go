// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/cantor/internal/api"
	"github.com/starford/cantor/internal/catalog"
	"github.com/starford/cantor/internal/library"
	"github.com/starford/cantor/internal/mcpserver"
	"github.com/starford/cantor/internal/planservice"
	"github.com/starford/cantor/internal/sse"
)

// logOutput returns the stream application logs are written to. In MCP
// mode stdout carries nothing but newline-delimited JSON-RPC, so every
// log line moves to stderr.
func logOutput(mcpMode bool) io.Writer {
	if mcpMode {
		return os.Stderr
	}
	return os.Stdout
}

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(logOutput(app.mcpMode), &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("catalog_path", cfg.Catalog.Path),
		slog.String("library_path", cfg.Library.Path),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Ensure catalog directory exists.
	if err := os.MkdirAll(cfg.Catalog.Path, 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}

	// Build the catalog store and load the seed files.
	store := catalog.NewStore()
	seed, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	store.Replace(*seed)
	logger.Info("Catalog loaded",
		slog.Int("songs", len(seed.Songs)),
		slog.Int("musicians", len(seed.Musicians)),
		slog.Int("set_lists", len(seed.SetLists)),
		slog.Int("rehearsals", len(seed.Rehearsals)))

	// Initialize the song search index.
	lib, err := library.Open(cfg.Library.Path)
	if err != nil {
		return fmt.Errorf("init library: %w", err)
	}
	defer lib.Close()

	// Run initial sync.
	if err := library.Sync(lib, store, logger); err != nil {
		logger.Warn("initial library sync failed", slog.String("error", err.Error()))
	}

	// Build the planner service.
	svc := planservice.NewService(store, lib, cfg.Scoring)

	// MCP mode: serve tools over stdio instead of HTTP.
	if app.mcpMode {
		logger.Info("Starting MCP server on stdio")
		return mcpserver.New(svc).ServeStdio()
	}

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	svc.SetEventCallback(broker.PublishPlanEvent)

	// Build API router.
	apiRouter := api.NewRouter(svc, cfg.Auth.AuthEnabled(), cfg.Auth.Token, http.HandlerFunc(broker.ServeHTTP))

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Watch the catalog directory and resync the index on reload.
	g.Go(func() error {
		return catalog.Watch(gCtx, store, cfg.Catalog.Path, logger, func() {
			if err := library.Sync(lib, store, logger); err != nil {
				logger.Warn("library sync failed", slog.String("error", err.Error()))
			}
			broker.PublishPlanEvent("catalog_reloaded", "")
		})
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")
		broker.Close()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
