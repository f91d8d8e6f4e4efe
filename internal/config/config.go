// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath   string `env:"MQCMS_DB_PATH" envDefault:"./data/mqcms.db"`
	Env      string `env:"MQCMS_ENV" envDefault:"development"`
	LogLevel string `env:"MQCMS_LOG_LEVEL" envDefault:"info"`

	// Scheduler configuration
	SweepEnabled  bool   `env:"MQCMS_SWEEP_ENABLED" envDefault:"true"`   // Run the scheduled-publishing sweep
	SweepSchedule string `env:"MQCMS_SWEEP_SCHEDULE" envDefault:"* * * * *"` // Cron spec for the sweep

	// Workflow policy
	StrictTransitions bool `env:"MQCMS_STRICT_TRANSITIONS" envDefault:"false"` // Reject out-of-order workflow transitions
	DedupeTasks       bool `env:"MQCMS_DEDUPE_TASKS" envDefault:"false"`       // Reuse open translation tasks on create

	// Batch publishing
	BatchPublishPerSecond float64 `env:"MQCMS_BATCH_PUBLISH_PER_SECOND" envDefault:"0"` // 0 = unpaced

	// Event log retention
	EventRetentionDays int `env:"MQCMS_EVENT_RETENTION_DAYS" envDefault:"90"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// BatchPacingEnabled returns true if batch publishing should be rate limited.
func (c Config) BatchPacingEnabled() bool {
	return c.BatchPublishPerSecond > 0
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.EventRetentionDays < 0 {
		return nil, fmt.Errorf("MQCMS_EVENT_RETENTION_DAYS must not be negative, got %d", cfg.EventRetentionDays)
	}

	return cfg, nil
}
