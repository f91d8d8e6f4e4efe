// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/store"
)

// TasksOptions holds the configurable policy points of the task
// registry.
type TasksOptions struct {
	// DedupeCreates makes Create return the existing open task for a
	// (document, language) pair instead of creating a duplicate. Off by
	// default: historically every create produced a new task and some
	// editorial tooling relies on that.
	DedupeCreates bool
}

// Tasks is the persisted registry of translation work. Tasks live in
// the document store as documents of type "translationTask"; the store
// does not enforce uniqueness per (document, language).
type Tasks struct {
	store  *store.Store
	logger *slog.Logger
	opts   TasksOptions
}

// NewTasks creates a task registry with default options.
func NewTasks(s *store.Store, logger *slog.Logger) *Tasks {
	return NewTasksWithOptions(s, logger, TasksOptions{})
}

// NewTasksWithOptions creates a task registry with explicit options.
func NewTasksWithOptions(s *store.Store, logger *slog.Logger, opts TasksOptions) *Tasks {
	return &Tasks{store: s, logger: logger, opts: opts}
}

// Create records a new pending translation task. The target document's
// type is captured when the document can be fetched, so statistics can
// filter by type later.
func (t *Tasks) Create(ctx context.Context, documentID, language, assignedTo string, dueDate *time.Time, notes string) (model.TranslationTask, error) {
	if !model.IsContentLanguage(language) {
		return model.TranslationTask{}, fmt.Errorf("unknown content language %q", language)
	}

	if t.opts.DedupeCreates {
		existing, err := t.firstOpenTask(ctx, documentID, language)
		if err == nil {
			t.logger.Debug("reusing open translation task",
				"document_id", documentID, "language", language, "task_id", existing.ID)
			return existing, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return model.TranslationTask{}, err
		}
	}

	now := time.Now().UTC()
	task := model.TranslationTask{
		DocumentID: documentID,
		Language:   language,
		AssignedTo: assignedTo,
		Status:     model.TaskStatusPending,
		DueDate:    dueDate,
		Notes:      notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	body, err := taskBody(task)
	if err != nil {
		return model.TranslationTask{}, err
	}
	if target, err := t.store.GetDocument(ctx, documentID); err == nil {
		body["documentType"] = target.Type
	}

	doc, err := t.store.Create(ctx, model.TypeTranslationTask, body)
	if err != nil {
		t.logger.Error("creating translation task failed",
			"category", model.EventCategoryTranslation,
			"document_id", documentID, "language", language, "error", err)
		return model.TranslationTask{}, fmt.Errorf("creating translation task: %w", err)
	}

	task.ID = doc.ID
	t.logger.Info("translation task created",
		"category", model.EventCategoryTranslation,
		"task_id", task.ID, "document_id", documentID, "language", language,
		"assigned_to", assignedTo)
	return task, nil
}

// UpdateProgress patches the first matching task's progress and notes.
// Task status is never changed by a progress update. A missing task is
// a no-op.
func (t *Tasks) UpdateProgress(ctx context.Context, documentID, language string, progress int, notes string) error {
	task, err := t.firstTask(ctx, documentID, language)
	if errors.Is(err, store.ErrNotFound) {
		t.logger.Debug("no translation task to update",
			"document_id", documentID, "language", language)
		return nil
	}
	if err != nil {
		return err
	}

	patch := t.store.Patch(task.ID).
		Set("progress", progress).
		Set("updatedAt", time.Now().UTC())
	if notes != "" {
		patch.Set("notes", notes)
	}
	if _, err := patch.Commit(ctx); err != nil {
		return fmt.Errorf("updating task progress: %w", err)
	}
	return nil
}

// Complete marks the first matching task completed, stamping who
// finished it and when. A missing task is a no-op.
func (t *Tasks) Complete(ctx context.Context, documentID, language, completedBy string) error {
	task, err := t.firstTask(ctx, documentID, language)
	if errors.Is(err, store.ErrNotFound) {
		t.logger.Debug("no translation task to complete",
			"document_id", documentID, "language", language)
		return nil
	}
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err = t.store.Patch(task.ID).
		Set("status", model.TaskStatusCompleted).
		Set("completedBy", completedBy).
		Set("completedAt", now).
		Set("updatedAt", now).
		Commit(ctx)
	if err != nil {
		return fmt.Errorf("completing task: %w", err)
	}

	t.logger.Info("translation task completed",
		"category", model.EventCategoryTranslation,
		"task_id", task.ID, "document_id", documentID, "language", language,
		"completed_by", completedBy)
	return nil
}

// BulkError records one failed item of a bulk status update.
type BulkError struct {
	DocumentID string `json:"documentId"`
	Message    string `json:"message"`
}

// BulkResult reports per-item outcomes of a bulk status update.
type BulkResult struct {
	Success int         `json:"success"`
	Failed  int         `json:"failed"`
	Errors  []BulkError `json:"errors"`
}

// BulkUpdateStatus sets the status of the task for each document id,
// creating a task with that status when none exists. Items are handled
// sequentially; one item's failure never aborts the rest.
func (t *Tasks) BulkUpdateStatus(ctx context.Context, documentIDs []string, language, status, updatedBy string) BulkResult {
	result := BulkResult{Errors: []BulkError{}}

	for _, id := range documentIDs {
		if err := t.setOrCreateStatus(ctx, id, language, status, updatedBy); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, BulkError{DocumentID: id, Message: err.Error()})
			t.logger.Warn("bulk task status update failed for document",
				"category", model.EventCategoryTranslation,
				"document_id", id, "language", language, "error", err)
			continue
		}
		result.Success++
	}

	return result
}

func (t *Tasks) setOrCreateStatus(ctx context.Context, documentID, language, status, updatedBy string) error {
	task, err := t.firstTask(ctx, documentID, language)
	if errors.Is(err, store.ErrNotFound) {
		now := time.Now().UTC()
		created := model.TranslationTask{
			DocumentID: documentID,
			Language:   language,
			AssignedTo: updatedBy,
			Status:     status,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		body, err := taskBody(created)
		if err != nil {
			return err
		}
		if target, err := t.store.GetDocument(ctx, documentID); err == nil {
			body["documentType"] = target.Type
		}
		_, err = t.store.Create(ctx, model.TypeTranslationTask, body)
		return err
	}
	if err != nil {
		return err
	}

	patch := t.store.Patch(task.ID).
		Set("status", status).
		Set("updatedAt", time.Now().UTC())
	if status == model.TaskStatusCompleted {
		patch.Set("completedBy", updatedBy).Set("completedAt", time.Now().UTC())
	}
	_, err = patch.Commit(ctx)
	return err
}

// Get returns the first task for a (document, language) pair.
func (t *Tasks) Get(ctx context.Context, documentID, language string) (model.TranslationTask, error) {
	return t.firstTask(ctx, documentID, language)
}

// List returns every task for a document, oldest first.
func (t *Tasks) List(ctx context.Context, documentID string) ([]model.TranslationTask, error) {
	docs, err := t.store.Query(ctx, store.Query{
		Type:    model.TypeTranslationTask,
		Eq:      map[string]string{"documentId": documentID},
		OrderBy: "createdAt",
	})
	if err != nil {
		return nil, fmt.Errorf("listing tasks for %s: %w", documentID, err)
	}

	tasks := make([]model.TranslationTask, 0, len(docs))
	for _, doc := range docs {
		task, err := taskFromDocument(doc)
		if err != nil {
			t.logger.Warn("skipping malformed task document", "task_id", doc.ID, "error", err)
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// firstTask returns the oldest task for a (document, language) pair.
func (t *Tasks) firstTask(ctx context.Context, documentID, language string) (model.TranslationTask, error) {
	docs, err := t.store.Query(ctx, store.Query{
		Type:    model.TypeTranslationTask,
		Eq:      map[string]string{"documentId": documentID, "language": language},
		OrderBy: "createdAt",
		Limit:   1,
	})
	if err != nil {
		return model.TranslationTask{}, fmt.Errorf("finding task for %s/%s: %w", documentID, language, err)
	}
	if len(docs) == 0 {
		return model.TranslationTask{}, store.ErrNotFound
	}
	return taskFromDocument(docs[0])
}

// firstOpenTask returns the oldest non-completed task for a pair.
func (t *Tasks) firstOpenTask(ctx context.Context, documentID, language string) (model.TranslationTask, error) {
	tasks, err := t.store.Query(ctx, store.Query{
		Type:    model.TypeTranslationTask,
		Eq:      map[string]string{"documentId": documentID, "language": language},
		OrderBy: "createdAt",
	})
	if err != nil {
		return model.TranslationTask{}, fmt.Errorf("finding open task for %s/%s: %w", documentID, language, err)
	}
	for _, doc := range tasks {
		if doc.Get("status").String() != model.TaskStatusCompleted {
			return taskFromDocument(doc)
		}
	}
	return model.TranslationTask{}, store.ErrNotFound
}

// taskBody converts a task to a document body.
func taskBody(task model.TranslationTask) (map[string]any, error) {
	raw, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("marshaling task: %w", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("unmarshaling task body: %w", err)
	}
	return body, nil
}

// taskFromDocument parses a task document back into a typed task.
func taskFromDocument(doc model.Document) (model.TranslationTask, error) {
	var task model.TranslationTask
	if err := json.Unmarshal(doc.Raw, &task); err != nil {
		return model.TranslationTask{}, fmt.Errorf("parsing task document %s: %w", doc.ID, err)
	}
	task.ID = doc.ID
	return task, nil
}
