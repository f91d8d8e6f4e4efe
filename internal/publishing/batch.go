// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package publishing

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"
)

// BatchItemResult is one document's outcome within a batch publish.
type BatchItemResult struct {
	DocumentID string           `json:"documentId"`
	Result     TransitionResult `json:"result"`
	Err        string           `json:"error,omitempty"`
}

// BatchPublisher applies the publish transition across document sets.
// Items run sequentially so one failure cannot disturb the accounting
// of the rest; an optional rate limiter paces store writes.
type BatchPublisher struct {
	workflow *Workflow
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewBatchPublisher creates an unpaced batch publisher.
func NewBatchPublisher(w *Workflow, logger *slog.Logger) *BatchPublisher {
	return &BatchPublisher{workflow: w, logger: logger}
}

// NewBatchPublisherWithRate creates a batch publisher that waits on the
// given limiter before each item.
func NewBatchPublisherWithRate(w *Workflow, limiter *rate.Limiter, logger *slog.Logger) *BatchPublisher {
	return &BatchPublisher{workflow: w, limiter: limiter, logger: logger}
}

// Publish publishes every document id in order, folding per-item
// outcomes into the result slice. The progress callback fires after
// each item regardless of outcome; the result always has exactly one
// entry per id.
func (b *BatchPublisher) Publish(ctx context.Context, ids []string, by string, onProgress func(done, total int, item BatchItemResult)) []BatchItemResult {
	results := make([]BatchItemResult, 0, len(ids))

	for i, id := range ids {
		item := b.publishOne(ctx, id, by)
		results = append(results, item)
		if onProgress != nil {
			onProgress(i+1, len(ids), item)
		}
	}

	return results
}

func (b *BatchPublisher) publishOne(ctx context.Context, id, by string) BatchItemResult {
	item := BatchItemResult{DocumentID: id}

	if b.limiter != nil {
		if err := b.limiter.Wait(ctx); err != nil {
			item.Err = err.Error()
			return item
		}
	}

	result, err := b.workflow.Publish(ctx, id, by)
	if err != nil {
		b.logger.Warn("batch publish item failed",
			"category", "publishing", "document_id", id, "error", err)
		item.Err = err.Error()
		return item
	}

	item.Result = result
	return item
}
