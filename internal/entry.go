// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/gebo/internal/apperr"
	"github.com/starford/gebo/internal/pipeline"
	"github.com/starford/gebo/internal/section"
	"github.com/starford/gebo/internal/storage"
)

// Run executes one backlink pass with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured logger on stderr; stdout carries the run summary.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("vault_path", cfg.Vault.Path),
		slog.String("mode", cfg.Run.Mode),
		slog.Bool("text_refs", cfg.Run.TextRefs),
		slog.Bool("dry_run", cfg.Run.DryRun),
		slog.String("log_level", cfg.App.LogLevel.String()))

	// Initialize storage. A missing vault root is fatal before any processing.
	store, err := storage.NewFS(cfg.Vault.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	report, runErr := pipeline.Run(ctx, store, logger, pipeline.Options{
		Mode:     section.Mode(cfg.Run.Mode),
		TextRefs: cfg.Run.TextRefs,
		DryRun:   cfg.Run.DryRun,
		Workers:  cfg.Run.Workers,
	})

	// Counts are reported whenever the write pass ran, even when some
	// documents failed to persist.
	if report != nil {
		fmt.Printf("Found %d markdown files, updated %d\n", report.FilesFound, report.FilesUpdated)
	}

	if runErr != nil {
		if errors.Is(runErr, apperr.ErrWrite) {
			logger.Error("Some documents could not be rewritten", slog.String("error", runErr.Error()))
		}
		return runErr
	}

	logger.Info("Run completed",
		slog.Int("files_found", report.FilesFound),
		slog.Int("files_updated", report.FilesUpdated))
	return nil
}
