package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/medahead/conftarget/internal/adapters/ai/gemini"
	"github.com/medahead/conftarget/internal/adapters/http/api"
	"github.com/medahead/conftarget/internal/adapters/http/docs"
	"github.com/medahead/conftarget/internal/adapters/repository"
	"github.com/medahead/conftarget/internal/app"
	"github.com/medahead/conftarget/internal/config"
	"github.com/medahead/conftarget/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Storage: SQLite when a path is configured, in-memory otherwise.
	var store repository.Store
	if cfg.DBPath != "" {
		store, err = repository.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			log.Error(ctx, "failed to open sqlite store", logger.Error(err))
			return
		}
		log.Info(ctx, "using sqlite store", logger.String("path", cfg.DBPath))
	} else {
		store = repository.NewMemoryStore()
		log.Info(ctx, "using in-memory store")
	}

	opts := []app.Option{
		app.WithLogger(log),
		app.WithStore(store),
		app.WithAnalyzeResultCap(cfg.AnalyzeResultCap),
		app.WithSuggestionLimits(cfg.SuggestHighLimit, cfg.SuggestFallbackLimit),
	}

	// The research collaborator is optional; scoring never depends on it.
	if cfg.GeminiAPIKey != "" {
		researcher, err := gemini.NewClient(ctx, cfg.GeminiAPIKey,
			gemini.WithModel(cfg.GeminiModel),
			gemini.WithTimeout(time.Duration(cfg.ResearchTimeoutMS)*time.Millisecond),
		)
		if err != nil {
			log.Warn(ctx, "research collaborator disabled", logger.Error(err))
		} else {
			opts = append(opts, app.WithResearcher(researcher))
			log.Info(ctx, "research collaborator enabled", logger.String("model", researcher.Model()))
		}
	} else {
		log.Info(ctx, "no gemini api key configured; research endpoint degrades")
	}

	svc := app.New(opts...)
	defer func() { _ = svc.Close() }()

	// HTTP mux and routes.
	mux := http.NewServeMux()
	docs.Register(ctx, mux)
	apiServer := api.NewServer(svc)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
