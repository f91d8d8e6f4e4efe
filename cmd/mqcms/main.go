// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command mqcms runs the content workflow daemon: it opens the document
// store, wires the publishing workflow and starts the scheduled
// publishing sweep.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/config"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/logging"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/publishing"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/scheduler"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/service"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("mqcms %s (%s)\n", appVersion, appGitCommit)
		return nil
	}

	// Load .env file if present (ignored in production deployments)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize database
	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	// Run migrations
	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the Event Log database
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	// Wire the publishing workflow
	documents := store.New(db, logger)
	events := service.NewEventService(db)
	validator := publishing.NewValidator()
	workflow := publishing.NewWorkflowWithOptions(documents, validator, events, logger,
		publishing.WorkflowOptions{StrictTransitions: cfg.StrictTransitions})

	// Trim old audit events on startup
	if cfg.EventRetentionDays > 0 {
		retention := time.Duration(cfg.EventRetentionDays) * 24 * time.Hour
		if err := events.DeleteOldEvents(context.Background(), retention); err != nil {
			slog.Warn("failed to trim old events", "error", err)
		}
	}

	if !cfg.SweepEnabled {
		slog.Info("scheduled publishing sweep disabled; nothing to run")
		return nil
	}

	sched := scheduler.New(workflow, events, cfg.SweepSchedule, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}

	slog.Info("mqcms started", "version", appVersion, "env", cfg.Env)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")
	sched.Stop()
	slog.Info("stopped")
	return nil
}
