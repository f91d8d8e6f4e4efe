// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service provides business logic and service layer functionality
// including event logging for audit trails.
package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/store"
)

// EventService provides event logging functionality.
type EventService struct {
	queries *store.EventQueries
}

// NewEventService creates a new EventService.
func NewEventService(db *sql.DB) *EventService {
	return &EventService{
		queries: store.NewEventQueries(db),
	}
}

// LogEvent creates a new event log entry.
func (s *EventService) LogEvent(ctx context.Context, level, category, message, actor string, metadata map[string]any) error {
	metadataJSON := "{}"
	if metadata != nil {
		jsonBytes, err := json.Marshal(metadata)
		if err == nil {
			metadataJSON = string(jsonBytes)
		}
	}

	err := s.queries.CreateEvent(ctx, model.Event{
		Level:     level,
		Category:  category,
		Message:   message,
		Actor:     actor,
		Metadata:  metadataJSON,
		CreatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to log event", "category", category, "error", err)
		return err
	}

	return nil
}

// LogInfo logs an info-level event.
func (s *EventService) LogInfo(ctx context.Context, category, message, actor string, metadata map[string]any) error {
	return s.LogEvent(ctx, model.EventLevelInfo, category, message, actor, metadata)
}

// LogWarning logs a warning-level event.
func (s *EventService) LogWarning(ctx context.Context, category, message, actor string, metadata map[string]any) error {
	return s.LogEvent(ctx, model.EventLevelWarning, category, message, actor, metadata)
}

// LogError logs an error-level event.
func (s *EventService) LogError(ctx context.Context, category, message, actor string, metadata map[string]any) error {
	return s.LogEvent(ctx, model.EventLevelError, category, message, actor, metadata)
}

// LogPublishingEvent logs a publishing workflow event.
func (s *EventService) LogPublishingEvent(ctx context.Context, level, message, actor string, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryPublishing, message, actor, metadata)
}

// LogTranslationEvent logs a translation workflow event.
func (s *EventService) LogTranslationEvent(ctx context.Context, level, message, actor string, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryTranslation, message, actor, metadata)
}

// LogSchedulerEvent logs a scheduler event.
func (s *EventService) LogSchedulerEvent(ctx context.Context, level, message string, metadata map[string]any) error {
	return s.LogEvent(ctx, level, model.EventCategoryScheduler, message, "system", metadata)
}

// Recent returns the most recent events for a category ("" = all).
func (s *EventService) Recent(ctx context.Context, category string, limit int) ([]model.Event, error) {
	return s.queries.RecentEvents(ctx, category, limit)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *EventService) DeleteOldEvents(ctx context.Context, olderThan time.Duration) error {
	return s.queries.DeleteOldEvents(ctx, olderThan)
}
