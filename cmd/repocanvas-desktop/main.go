package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs when system roots are missing

	githubadapter "github.com/ericfisherdev/repocanvas/internal/adapter/driven/github"
	sqliteadapter "github.com/ericfisherdev/repocanvas/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/repocanvas/internal/adapter/driving/desktop"
	"github.com/ericfisherdev/repocanvas/internal/adapter/driving/desktop/window"
	"github.com/ericfisherdev/repocanvas/internal/application"
	"github.com/ericfisherdev/repocanvas/internal/config"
	"github.com/ericfisherdev/repocanvas/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Lookup history is optional on the desktop: run without it if the
	// database cannot be opened.
	var lookupStore driven.LookupStore
	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		slog.Warn("lookup history disabled", "path", cfg.DBPath, "error", err)
	} else {
		defer func() {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}()
		if _, err := sqliteadapter.RunMigrations(db.Writer); err != nil {
			return err
		}
		lookupStore = sqliteadapter.NewLookupRepo(db)
	}

	ghClient, err := githubadapter.NewClient(cfg.GitHubToken, cfg.GitHubAPIURL)
	if err != nil {
		return err
	}

	loader := application.NewRepositoryLoader(ghClient, lookupStore, slog.Default())
	app := desktop.NewApp(ctx, loader, slog.Default())

	slog.Info("repocanvas desktop started", "github_token", cfg.HasGitHubToken())
	return window.Run(app, "RepoCanvas")
}
