package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "channel-offers/internal/adapter/http"
	"channel-offers/internal/adapter/postgres"
	"channel-offers/internal/adapter/usecase"
	"channel-offers/internal/config"
	"channel-offers/internal/db"
)

// main is the entry point of the channel offer service. It loads
// configuration, optionally runs database migrations and seeding,
// initializes the database pool and repository, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down the
// server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	vocab := cfg.Offer.Vocabulary()
	repo := postgres.NewOfferRepository(pool, vocab)

	if cfg.Psql.Seed {
		skus, err := repo.ListSKUs(ctx, 1)
		switch {
		case err != nil:
			logger.Error("seed check error", slog.Any("error", err))
		case len(skus) > 0:
			logger.Info("database not empty, skipping seed")
		default:
			if err = db.Seed(ctx, repo, vocab, cfg.Offer.OperatorCodes, cfg.Offer.Statuses); err != nil {
				logger.Error("seed error", slog.Any("error", err))
			} else {
				logger.Info("demo data seeded")
			}
		}
	}

	svc := usecase.NewOfferUseCase(repo, vocab)

	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.MaxFeedProducts)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return
	}
	logger.Info("server gracefully stopped")
	exitCode = 0
}
