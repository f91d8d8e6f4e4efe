// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "./data/mqcms.db" {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
	if !cfg.IsDevelopment() {
		t.Error("default env is not development")
	}
	if !cfg.SweepEnabled {
		t.Error("sweep disabled by default")
	}
	if cfg.SweepSchedule != "* * * * *" {
		t.Errorf("SweepSchedule = %q, want every minute", cfg.SweepSchedule)
	}
	if cfg.StrictTransitions || cfg.DedupeTasks {
		t.Error("policy flags on by default; the permissive behavior is the default")
	}
	if cfg.BatchPacingEnabled() {
		t.Error("batch pacing on by default")
	}
	if cfg.EventRetentionDays != 90 {
		t.Errorf("EventRetentionDays = %d, want 90", cfg.EventRetentionDays)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MQCMS_DB_PATH", "/tmp/test.db")
	t.Setenv("MQCMS_ENV", "production")
	t.Setenv("MQCMS_STRICT_TRANSITIONS", "true")
	t.Setenv("MQCMS_BATCH_PUBLISH_PER_SECOND", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
	if !cfg.StrictTransitions {
		t.Error("StrictTransitions not picked up")
	}
	if !cfg.BatchPacingEnabled() || cfg.BatchPublishPerSecond != 2.5 {
		t.Errorf("BatchPublishPerSecond = %v, want 2.5", cfg.BatchPublishPerSecond)
	}
}

func TestLoadRejectsNegativeRetention(t *testing.T) {
	t.Setenv("MQCMS_EVENT_RETENTION_DAYS", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted negative retention")
	}
}
