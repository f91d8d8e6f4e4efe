// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package publishing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/service"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/store"
)

// ErrFeedbackRequired is returned by Reject when no feedback was given.
var ErrFeedbackRequired = errors.New("rejection feedback is required")

// WorkflowOptions holds the configurable policy points of the state
// machine.
type WorkflowOptions struct {
	// StrictTransitions rejects structurally impossible calls such as
	// approving a draft. Off by default: the permissive behavior is
	// long-standing and some editorial tooling re-stamps transitions
	// deliberately.
	StrictTransitions bool
}

// strictFrom lists, per transition, the states it may start from when
// StrictTransitions is on.
var strictFrom = map[string][]string{
	"submit":    {model.StatusDraft},
	"approve":   {model.StatusReview},
	"reject":    {model.StatusReview, model.StatusApproved},
	"publish":   {model.StatusApproved},
	"unpublish": {model.StatusPublished},
	"archive":   {model.StatusReview, model.StatusApproved, model.StatusPublished},
	"schedule":  {model.StatusReview, model.StatusApproved},
}

// TransitionResult reports the outcome of a workflow call. A refused
// publish carries the failing validation unchanged.
type TransitionResult struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message,omitempty"`
	Status     string                  `json:"status,omitempty"`
	Validation *model.ValidationResult `json:"validation,omitempty"`
}

// Workflow is the publishing state machine. Transitions patch the
// document's embedded publishingStatus; writes are last-write-wins like
// every other store mutation.
type Workflow struct {
	store     *store.Store
	validator *Validator
	events    *service.EventService
	logger    *slog.Logger
	opts      WorkflowOptions
}

// NewWorkflow creates a publishing workflow with default options.
func NewWorkflow(s *store.Store, v *Validator, events *service.EventService, logger *slog.Logger) *Workflow {
	return NewWorkflowWithOptions(s, v, events, logger, WorkflowOptions{})
}

// NewWorkflowWithOptions creates a publishing workflow with explicit
// options.
func NewWorkflowWithOptions(s *store.Store, v *Validator, events *service.EventService, logger *slog.Logger, opts WorkflowOptions) *Workflow {
	return &Workflow{store: s, validator: v, events: events, logger: logger, opts: opts}
}

// SubmitForReview moves a draft into review.
func (w *Workflow) SubmitForReview(ctx context.Context, id, by, notes string) (TransitionResult, error) {
	return w.transition(ctx, id, "submit", func(p *store.Patch, now time.Time) {
		p.Set("publishingStatus.status", model.StatusReview).
			Set("publishingStatus.submittedAt", now).
			Set("publishingStatus.submittedBy", by)
		if notes != "" {
			p.Set("publishingStatus.notes", notes)
		}
	}, by, "submitted for review")
}

// Approve moves a document under review to approved.
func (w *Workflow) Approve(ctx context.Context, id, by, notes string) (TransitionResult, error) {
	return w.transition(ctx, id, "approve", func(p *store.Patch, now time.Time) {
		p.Set("publishingStatus.status", model.StatusApproved).
			Set("publishingStatus.approvedAt", now).
			Set("publishingStatus.approvedBy", by)
		if notes != "" {
			p.Set("publishingStatus.notes", notes)
		}
	}, by, "approved")
}

// Reject sends a document back to draft with mandatory feedback.
// Rejecting twice in a row simply overwrites the rejection metadata.
func (w *Workflow) Reject(ctx context.Context, id, by, feedback string) (TransitionResult, error) {
	if feedback == "" {
		return TransitionResult{Success: false, Message: ErrFeedbackRequired.Error()}, ErrFeedbackRequired
	}
	return w.transition(ctx, id, "reject", func(p *store.Patch, now time.Time) {
		p.Set("publishingStatus.status", model.StatusDraft).
			Set("publishingStatus.rejectedAt", now).
			Set("publishingStatus.rejectedBy", by).
			Set("publishingStatus.notes", feedback)
	}, by, "rejected")
}

// Publish makes a document live. The transition is guarded: the
// document is re-fetched and structurally validated, and on failure the
// validation result is returned instead of a state change.
func (w *Workflow) Publish(ctx context.Context, id, by string) (TransitionResult, error) {
	doc, err := w.store.GetDocument(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return TransitionResult{Success: false, Message: "document not found"}, nil
	}
	if err != nil {
		return TransitionResult{}, fmt.Errorf("fetching document for publish: %w", err)
	}

	if w.opts.StrictTransitions && !transitionAllowed("publish", doc.WorkflowStatus()) {
		return w.refuseStrict("publish", doc), nil
	}

	validation := w.validator.Validate(doc)
	if !validation.IsValid {
		w.logger.Warn("publish refused by validation",
			"category", model.EventCategoryPublishing,
			"document_id", id, "type", doc.Type, "errors", len(validation.Errors))
		return TransitionResult{
			Success:    false,
			Message:    "structural validation failed",
			Status:     doc.WorkflowStatus(),
			Validation: &validation,
		}, nil
	}

	now := time.Now().UTC()
	updated, err := w.store.Patch(id).
		Set("publishingStatus.status", model.StatusPublished).
		Set("publishingStatus.publishedAt", now).
		Set("publishingStatus.publishedBy", by).
		Set("publishedAt", now).
		Set("publishedBy", by).
		Commit(ctx)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("publishing %s: %w", id, err)
	}

	w.logEvent(ctx, id, updated.Type, by, "published")
	return TransitionResult{Success: true, Status: model.StatusPublished}, nil
}

// Unpublish takes a document off the live site and returns it to
// draft, clearing its publish timestamp.
func (w *Workflow) Unpublish(ctx context.Context, id, by, reason string) (TransitionResult, error) {
	return w.transition(ctx, id, "unpublish", func(p *store.Patch, now time.Time) {
		p.Set("publishingStatus.status", model.StatusDraft).
			Set("publishingStatus.unpublishedAt", now).
			Set("publishingStatus.unpublishedBy", by).
			Unset("publishedAt", "publishedBy")
		if reason != "" {
			p.Set("publishingStatus.notes", reason)
		}
	}, by, "unpublished")
}

// Archive retires a document from the workflow.
func (w *Workflow) Archive(ctx context.Context, id, by, reason string) (TransitionResult, error) {
	return w.transition(ctx, id, "archive", func(p *store.Patch, now time.Time) {
		p.Set("publishingStatus.status", model.StatusArchived).
			Set("publishingStatus.archivedAt", now).
			Set("publishingStatus.archivedBy", by)
		if reason != "" {
			p.Set("publishingStatus.notes", reason)
		}
	}, by, "archived")
}

// SchedulePublishing approves a document for deferred publishing at the
// given time. The actual publish is driven by an external sweep; this
// transition only records the schedule.
func (w *Workflow) SchedulePublishing(ctx context.Context, id string, publishAt time.Time, by string) (TransitionResult, error) {
	return w.transition(ctx, id, "schedule", func(p *store.Patch, now time.Time) {
		p.Set("publishingStatus.status", model.StatusApproved).
			Set("publishingStatus.approvedAt", now).
			Set("publishingStatus.approvedBy", by).
			Set("publishingStatus.scheduledPublishAt", publishAt)
	}, by, fmt.Sprintf("scheduled for publishing at %s", publishAt.UTC().Format(time.RFC3339)))
}

// ScheduledReadyToPublish returns the approved documents whose
// scheduled publish time is at or before now. It is a pure query; an
// external timer decides when to call it and publish the results.
func (w *Workflow) ScheduledReadyToPublish(ctx context.Context, now time.Time) ([]model.Document, error) {
	docs, err := w.store.Query(ctx, store.Query{
		Eq:       map[string]string{"publishingStatus.status": model.StatusApproved},
		NotAfter: map[string]time.Time{"publishingStatus.scheduledPublishAt": now},
	})
	if err != nil {
		return nil, fmt.Errorf("querying scheduled documents: %w", err)
	}
	return docs, nil
}

// transition runs the shared fetch, guard, patch, audit sequence for
// the unguarded transitions.
func (w *Workflow) transition(ctx context.Context, id, name string, apply func(*store.Patch, time.Time), by, action string) (TransitionResult, error) {
	doc, err := w.store.GetDocument(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return TransitionResult{Success: false, Message: "document not found"}, nil
	}
	if err != nil {
		return TransitionResult{}, fmt.Errorf("fetching document for %s: %w", name, err)
	}

	if w.opts.StrictTransitions && !transitionAllowed(name, doc.WorkflowStatus()) {
		return w.refuseStrict(name, doc), nil
	}

	now := time.Now().UTC()
	patch := w.store.Patch(id)
	apply(patch, now)
	updated, err := patch.Commit(ctx)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("applying %s to %s: %w", name, id, err)
	}

	w.logEvent(ctx, id, updated.Type, by, action)
	return TransitionResult{Success: true, Status: updated.WorkflowStatus()}, nil
}

func (w *Workflow) refuseStrict(name string, doc model.Document) TransitionResult {
	status := doc.WorkflowStatus()
	w.logger.Warn("transition refused in strict mode",
		"category", model.EventCategoryPublishing,
		"document_id", doc.ID, "transition", name, "status", status)
	return TransitionResult{
		Success: false,
		Message: fmt.Sprintf("cannot %s a %s document", name, status),
		Status:  status,
	}
}

func (w *Workflow) logEvent(ctx context.Context, id, docType, by, action string) {
	if w.events == nil {
		return
	}
	_ = w.events.LogPublishingEvent(ctx, model.EventLevelInfo,
		fmt.Sprintf("document %s", action), by, map[string]any{
			"document_id":   id,
			"document_type": docType,
		})
}

func transitionAllowed(name, from string) bool {
	for _, s := range strictFrom[name] {
		if s == from {
			return true
		}
	}
	return false
}
