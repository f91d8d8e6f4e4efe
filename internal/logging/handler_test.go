package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/store"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/testutil"
)

func TestEventLogHandlerForwardsWarnings(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()
	ctx := context.Background()

	inner := slog.NewTextHandler(io.Discard, nil)
	logger := slog.New(NewEventLogHandler(inner, db))

	logger.Info("just informational")
	logger.Warn("publish refused by validation",
		"category", model.EventCategoryPublishing, "document_id", "d1")
	logger.Error("sweep failed", "category", model.EventCategoryScheduler)

	queries := store.NewEventQueries(db)
	events, err := queries.RecentEvents(ctx, "", 10)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	// INFO stays out of the event log.
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	byLevel := map[string]model.Event{}
	for _, e := range events {
		byLevel[e.Level] = e
	}
	warn, ok := byLevel[model.EventLevelWarning]
	if !ok {
		t.Fatal("no warning event recorded")
	}
	if warn.Category != model.EventCategoryPublishing {
		t.Errorf("warning category = %q, want publishing", warn.Category)
	}
	if !strings.Contains(warn.Metadata, "d1") {
		t.Errorf("metadata %q lacks the document id", warn.Metadata)
	}
	if strings.Contains(warn.Metadata, "category") {
		t.Errorf("metadata %q still carries the category attribute", warn.Metadata)
	}
	if _, ok := byLevel[model.EventLevelError]; !ok {
		t.Error("no error event recorded")
	}
}

func TestEventLogHandlerInfersCategory(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	logger := slog.New(NewEventLogHandler(slog.NewTextHandler(io.Discard, nil), db))

	tests := []struct {
		message string
		want    string
	}{
		{"publish refused", model.EventCategoryPublishing},
		{"translation queue stalled", model.EventCategoryTranslation},
		{"document body malformed", model.EventCategoryContent},
		{"sweep overran its window", model.EventCategoryScheduler},
		{"disk almost full", model.EventCategorySystem},
	}
	for _, tt := range tests {
		logger.Warn(tt.message)
	}

	events, err := store.NewEventQueries(db).RecentEvents(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(events) != len(tests) {
		t.Fatalf("got %d events, want %d", len(events), len(tests))
	}
	got := map[string]string{}
	for _, e := range events {
		got[e.Message] = e.Category
	}
	for _, tt := range tests {
		if got[tt.message] != tt.want {
			t.Errorf("category for %q = %q, want %q", tt.message, got[tt.message], tt.want)
		}
	}
}

func TestEventLogHandlerCustomLevel(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	h := NewEventLogHandlerWithLevel(slog.NewTextHandler(io.Discard, nil), db, slog.LevelError)
	logger := slog.New(h)

	logger.Warn("below the threshold")
	logger.Error("at the threshold")

	events, err := store.NewEventQueries(db).RecentEvents(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if len(events) != 1 || events[0].Level != model.EventLevelError {
		t.Fatalf("events = %+v, want the single error", events)
	}
}

func TestEscapeJSON(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`plain`, `plain`},
		{`quote " here`, `quote \" here`},
		{"line\nbreak", `line\nbreak`},
		{`back\slash`, `back\\slash`},
	}
	for _, tt := range tests {
		if got := escapeJSON(tt.in); got != tt.want {
			t.Errorf("escapeJSON(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
