package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ichscheine/goAIME-sub001/internal/api"
	"github.com/ichscheine/goAIME-sub001/internal/infrastructure/config"
	"github.com/ichscheine/goAIME-sub001/internal/service"
	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
	"github.com/ichscheine/goAIME-sub001/internal/store"

	_ "github.com/ichscheine/goAIME-sub001/docs" // generated swagger docs
)

// @title           goAIME API
// @version         1.0
// @description     AMC and AIME practice: contests, timed sessions with a server-side timer, and progress analytics.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	timerStore, err := store.OpenTimerStore(cfg.TimerStoreDir)
	if err != nil {
		logger.Error("failed to open timer store", "error", err)
		os.Exit(1)
	}
	defer timerStore.Close()

	presets, err := config.LoadPresets(cfg.PresetsFile)
	if err != nil {
		logger.Error("failed to load presets", "error", err)
		os.Exit(1)
	}

	timers := service.NewTimerService(timerStore, logger, sessiontimer.WithInterval(cfg.TickInterval))
	sessions := service.NewSessionService(db, timers, logger)
	handler := api.NewHandler(db, sessions, timers, presets, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
		// Running timers are paused and snapshotted before the stores close.
		timers.Close(ctx)
	}()

	logger.Info("starting server",
		"address", cfg.ServerAddress,
		"database", cfg.DatabasePath,
		"presets", len(presets),
		"tick_interval", cfg.TickInterval,
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
	<-done
}
