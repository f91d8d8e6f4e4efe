// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
)

// EventQueries provides access to the event log table.
type EventQueries struct {
	db *sql.DB
}

// NewEventQueries creates event log queries over the given database.
func NewEventQueries(db *sql.DB) *EventQueries {
	return &EventQueries{db: db}
}

// CreateEvent inserts a new event log entry.
func (q *EventQueries) CreateEvent(ctx context.Context, e model.Event) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO events (level, category, message, actor, metadata, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Level, e.Category, e.Message, e.Actor, e.Metadata, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// RecentEvents returns the most recent events, newest first, optionally
// filtered by category.
func (q *EventQueries) RecentEvents(ctx context.Context, category string, limit int) ([]model.Event, error) {
	query := `SELECT id, level, category, message, actor, metadata, created_at FROM events`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.Level, &e.Category, &e.Message, &e.Actor, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// DeleteOldEvents removes events older than the cutoff.
func (q *EventQueries) DeleteOldEvents(ctx context.Context, olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	if _, err := q.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < ?`, cutoff); err != nil {
		return fmt.Errorf("deleting old events: %w", err)
	}
	return nil
}
