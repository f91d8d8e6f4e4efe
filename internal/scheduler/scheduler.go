// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler drives time-deferred publishing: a cron job that
// periodically publishes approved documents whose scheduled time has
// passed.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/publishing"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/service"
)

// publishActor is the actor recorded for sweep-driven publishes.
const publishActor = "scheduler"

// Scheduler runs the scheduled-publishing sweep.
type Scheduler struct {
	workflow *publishing.Workflow
	events   *service.EventService
	cron     *cron.Cron
	spec     string
	logger   *slog.Logger
}

// New creates a scheduler sweeping on the given cron spec.
func New(workflow *publishing.Workflow, events *service.EventService, spec string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		workflow: workflow,
		events:   events,
		cron:     cron.New(),
		spec:     spec,
		logger:   logger,
	}
}

// Start begins the cron job. The spec comes from configuration and
// defaults to every minute.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, func() {
		if err := s.Sweep(context.Background(), time.Now()); err != nil {
			s.logger.Error("scheduled publishing sweep failed",
				"category", model.EventCategoryScheduler, "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "spec", s.spec, "jobs", len(s.cron.Entries()))
	return nil
}

// Stop gracefully stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// Sweep publishes every approved document whose scheduled publish time
// is at or before now. Per-document failures are logged and skipped so
// one bad document cannot stall the rest.
func (s *Scheduler) Sweep(ctx context.Context, now time.Time) error {
	docs, err := s.workflow.ScheduledReadyToPublish(ctx, now)
	if err != nil {
		return err
	}

	if len(docs) == 0 {
		return nil
	}

	s.logger.Info("processing scheduled documents",
		"category", model.EventCategoryScheduler, "count", len(docs))

	for _, doc := range docs {
		result, err := s.workflow.Publish(ctx, doc.ID, publishActor)
		if err != nil {
			s.logger.Error("failed to publish scheduled document",
				"category", model.EventCategoryScheduler,
				"document_id", doc.ID, "type", doc.Type, "error", err)
			continue
		}
		if !result.Success {
			s.logger.Warn("scheduled document refused by workflow",
				"category", model.EventCategoryScheduler,
				"document_id", doc.ID, "type", doc.Type, "message", result.Message)
			continue
		}

		s.logger.Info("published scheduled document",
			"category", model.EventCategoryScheduler,
			"document_id", doc.ID, "type", doc.Type)

		if s.events != nil {
			_ = s.events.LogSchedulerEvent(ctx, model.EventLevelInfo,
				"document published automatically by scheduler", map[string]any{
					"document_id":   doc.ID,
					"document_type": doc.Type,
					"published_at":  now.UTC().Format(time.RFC3339),
				})
		}
	}

	return nil
}
