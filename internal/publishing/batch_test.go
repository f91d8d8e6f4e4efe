// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package publishing

import (
	"context"
	"testing"

	"golang.org/x/time/rate"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/testutil"
)

func TestBatchPublish(t *testing.T) {
	w, s, cleanup := newTestWorkflow(t, WorkflowOptions{})
	defer cleanup()
	ctx := context.Background()

	good := createPage(t, s, validPageBody())
	bad := createPage(t, s, map[string]any{
		"title": map[string]any{"en": "Broken", "bn": ""},
	})
	ids := []string{good.ID, bad.ID, "no-such-doc"}

	b := NewBatchPublisher(w, testutil.TestLogger())

	var progress []int
	results := b.Publish(ctx, ids, "editor", func(done, total int, item BatchItemResult) {
		if total != len(ids) {
			t.Errorf("progress total = %d, want %d", total, len(ids))
		}
		progress = append(progress, done)
	})

	if len(results) != len(ids) {
		t.Fatalf("got %d results, want exactly one per id", len(results))
	}
	if len(progress) != 3 || progress[0] != 1 || progress[2] != 3 {
		t.Errorf("progress calls = %v, want [1 2 3]", progress)
	}

	if !results[0].Result.Success {
		t.Errorf("valid document failed: %+v", results[0])
	}
	if results[1].Result.Success {
		t.Errorf("invalid document published: %+v", results[1])
	}
	if results[1].Result.Validation == nil {
		t.Error("invalid document's result carries no validation")
	}
	if results[2].Result.Success || results[2].Result.Message != "document not found" {
		t.Errorf("missing document result = %+v, want not-found refusal", results[2])
	}

	// One item's failure never blocks the others.
	got, err := s.GetDocument(ctx, good.ID)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if got.WorkflowStatus() != model.StatusPublished {
		t.Errorf("good document status = %s, want published", got.WorkflowStatus())
	}
	gotBad, err := s.GetDocument(ctx, bad.ID)
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if gotBad.WorkflowStatus() != model.StatusDraft {
		t.Errorf("bad document status = %s, want draft", gotBad.WorkflowStatus())
	}
}

func TestBatchPublishEmpty(t *testing.T) {
	w, _, cleanup := newTestWorkflow(t, WorkflowOptions{})
	defer cleanup()

	b := NewBatchPublisher(w, testutil.TestLogger())
	results := b.Publish(context.Background(), nil, "editor", nil)
	if len(results) != 0 {
		t.Errorf("got %d results for empty batch", len(results))
	}
}

func TestBatchPublishPaced(t *testing.T) {
	w, s, cleanup := newTestWorkflow(t, WorkflowOptions{})
	defer cleanup()
	ctx := context.Background()

	first := createPage(t, s, validPageBody())
	second := createPage(t, s, validPageBody())

	// A generous limiter: pacing must not change outcomes.
	b := NewBatchPublisherWithRate(w, rate.NewLimiter(rate.Limit(1000), 1), testutil.TestLogger())
	results := b.Publish(ctx, []string{first.ID, second.ID}, "editor", nil)
	for _, item := range results {
		if !item.Result.Success {
			t.Errorf("paced publish of %s failed: %+v", item.DocumentID, item)
		}
	}
}

func TestBatchPublishCancelledContext(t *testing.T) {
	w, s, cleanup := newTestWorkflow(t, WorkflowOptions{})
	defer cleanup()

	page := createPage(t, s, validPageBody())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewBatchPublisherWithRate(w, rate.NewLimiter(rate.Limit(1), 1), testutil.TestLogger())
	results := b.Publish(ctx, []string{page.ID}, "editor", nil)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Err == "" {
		t.Error("cancelled context produced no item error")
	}
}
