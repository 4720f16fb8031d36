package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/coopware/thrift_association_app/internal/adapters/persistence/jsonstore"
	"github.com/coopware/thrift_association_app/internal/console"
	"github.com/coopware/thrift_association_app/internal/core/domain"
	"github.com/coopware/thrift_association_app/internal/core/services"
	"github.com/coopware/thrift_association_app/internal/platform/config"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, err := jsonstore.New(cfg.DataDir)
	if err != nil {
		logger.Error("Failed to open data directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	registry := services.NewRegistry()
	registry.Load(
		loadOrEmpty(logger, "members", func() ([]*domain.Member, error) { return store.LoadMembers(ctx) }),
		loadOrEmpty(logger, "transactions", func() ([]domain.Transaction, error) { return store.LoadTransactions(ctx) }),
		loadOrEmpty(logger, "loans", func() ([]*domain.Loan, error) { return store.LoadLoans(ctx) }),
		loadOrEmpty(logger, "users", func() ([]*domain.User, error) { return store.LoadUsers(ctx) }),
	)

	// The log is the source of truth: project it onto the accounts before
	// anything else runs.
	services.ReplayLog(registry.Members(), registry.Transactions())

	svc := services.NewContainer(registry, store, cfg, services.WithLogger(logger))
	if err := svc.Auth.EnsureBootstrapAdmin(ctx); err != nil {
		logger.Error("Failed to bootstrap admin user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ui := console.New(svc, cfg, os.Stdin, os.Stdout)
	if err := ui.Run(ctx); err != nil {
		logger.Error("Console session ended with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// loadOrEmpty treats a failed snapshot load as an empty collection; losing a
// corrupt file is preferable to refusing to start.
func loadOrEmpty[T any](logger *slog.Logger, name string, load func() ([]T, error)) []T {
	records, err := load()
	if err != nil {
		logger.Error("Failed to load snapshot, starting with empty collection",
			slog.String("collection", name),
			slog.String("error", err.Error()))
		return nil
	}
	return records
}
