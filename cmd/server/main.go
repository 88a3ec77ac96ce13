package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ev-catalog-api/internal/config"
	"ev-catalog-api/internal/database"
	"ev-catalog-api/internal/handler"
	"ev-catalog-api/internal/importer"
	"ev-catalog-api/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	slog.Info("starting ev-catalog-api")

	// Optional .env for local development.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	slog.Info("connecting to database", "host", cfg.Database.Host, "database", cfg.Database.Name)
	db, err := database.Connect(ctx, cfg.Database)
	cancel()
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database connection established")

	if err := database.RunMigrations(context.Background(), db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// One-shot CSV bootstrap; import problems are not fatal.
	imported, err := importer.New(db, cfg.CSVPath).Run(context.Background())
	if err != nil {
		slog.Error("CSV import failed", "error", err)
	} else if imported {
		slog.Info("CSV data imported")
	}

	repo := repository.NewVehicleRepo(db)

	vehicleHandler := handler.NewVehicleHandler(repo, cfg.StrictFilters)
	filterHandler := handler.NewFilterHandler(repo)
	schemaHandler := handler.NewSchemaHandler(repo)
	healthHandler := handler.NewHealthHandler(repo)

	router := handler.NewRouter(vehicleHandler, filterHandler, schemaHandler, healthHandler, handler.RouterConfig{
		CORSOrigin:     cfg.CORSOrigin,
		RequestTimeout: cfg.RequestTimeout,
		RateLimiter:    handler.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server started", "port", cfg.APIPort)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}

	slog.Info("server stopped")
}
