// Package main is the entry point for the Iterary API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/iterary/backend/internal/config"
	"github.com/iterary/backend/internal/handler"
	"github.com/iterary/backend/internal/middleware"
	"github.com/iterary/backend/internal/poi"
	"github.com/iterary/backend/internal/repo"
	"github.com/iterary/backend/internal/service"
	"github.com/iterary/backend/migrations"
)

// maxBodyBytes caps incoming request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// pgxpool manages a pool of Postgres connections.
	// New() does not open connections immediately — the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Migrations -------------------------------------------------------
	// Apply pending migrations at startup from the embedded FS. Goose needs a
	// database/sql handle, so open one alongside the pgx pool just for this.
	if err := runMigrations(cfg.DatabaseURL); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations up to date")

	// --- Activity providers -----------------------------------------------
	registry := buildProviderRegistry(cfg)
	finder := poi.NewMultiProvider(registry, logger)

	// --- Repos and services -----------------------------------------------
	tripRepo := repo.NewTripRepo(pool)
	userRepo := repo.NewUserRepo(pool)
	memberRepo := repo.NewMemberRepo(pool)
	activityRepo := repo.NewActivityRepo(pool)
	expenseRepo := repo.NewExpenseRepo(pool)
	messageRepo := repo.NewMessageRepo(pool)

	srvHandler := handler.NewServer(
		service.NewPlannerService(finder, registry, logger),
		service.NewTripService(tripRepo),
		service.NewUserService(userRepo),
		service.NewMemberService(tripRepo, memberRepo),
		service.NewActivityService(tripRepo, activityRepo),
		service.NewExpenseService(tripRepo, expenseRepo),
		service.NewMessageService(tripRepo, messageRepo),
	)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured JSON log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(maxBodyBytes))

	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // provider fan-out can be slow
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// runMigrations applies all pending goose migrations from the embedded FS.
func runMigrations(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}

// buildProviderRegistry registers the activity providers named in
// cfg.ProviderOrder. Yelp and Foursquare are skipped when their API keys are
// missing; the TripAdvisor scraper needs no credentials.
func buildProviderRegistry(cfg config.Config) *poi.Registry {
	var providers []poi.Provider
	for _, name := range cfg.ProviderOrder {
		switch name {
		case "yelp":
			if cfg.YelpAPIKey != "" {
				providers = append(providers, poi.NewYelp(cfg.YelpAPIKey))
			} else {
				slog.Warn("YELP_API_KEY not set; yelp provider disabled")
			}
		case "foursquare":
			if cfg.FoursquareAPIKey != "" {
				providers = append(providers, poi.NewFoursquare(cfg.FoursquareAPIKey))
			} else {
				slog.Warn("FOURSQUARE_API_KEY not set; foursquare provider disabled")
			}
		case "tripadvisor":
			providers = append(providers, poi.NewTripAdvisor())
		default:
			slog.Warn("unknown provider in POI_PROVIDERS; skipping", "provider", name)
		}
	}
	return poi.NewRegistry(providers...)
}
