// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package translation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/store"
)

// infoPageTypes are simple informational page types whose translation
// work gets medium priority even when unpublished.
var infoPageTypes = map[string]bool{
	model.TypePage:          true,
	model.TypeAdmissionInfo: true,
}

// Workflow builds the translator work queue by analyzing live document
// completeness across a document type.
type Workflow struct {
	reader store.Reader
	logger *slog.Logger
}

// NewWorkflow creates a translation workflow aggregator over the given
// store handle.
func NewWorkflow(reader store.Reader, logger *slog.Logger) *Workflow {
	return &Workflow{reader: reader, logger: logger}
}

// ListIncomplete returns every document of the given type with at least
// one incomplete language, with its per-language status and priority.
// A nil fields list uses the site defaults for the type. Fully
// translated documents are filtered out.
func (w *Workflow) ListIncomplete(ctx context.Context, docType string, fields []model.FieldSpec) ([]model.TranslationWorkflowItem, error) {
	if fields == nil {
		fields = model.RequiredFieldsFor(docType)
	}

	docs, err := w.reader.Query(ctx, store.Query{Type: docType})
	if err != nil {
		w.logger.Error("listing documents for translation queue failed",
			"category", model.EventCategoryTranslation, "type", docType, "error", err)
		return nil, fmt.Errorf("listing %s documents: %w", docType, err)
	}

	items := make([]model.TranslationWorkflowItem, 0, len(docs))
	for _, doc := range docs {
		statuses := AnalyzeCompleteness(doc, fields)
		if IsFullyTranslated(statuses) {
			continue
		}
		items = append(items, model.TranslationWorkflowItem{
			DocumentID:   doc.ID,
			DocumentType: doc.Type,
			Title:        doc.Title(),
			Status:       statuses,
			Priority:     priorityFor(doc),
		})
	}

	w.logger.Debug("translation queue built",
		"type", docType, "documents", len(docs), "incomplete", len(items))
	return items, nil
}

// priorityFor derives the editorial urgency of an incomplete document.
// Published content ranks highest: it is already live with gaps.
// Featured content, leadership profiles and plain informational pages
// rank medium; unpublished drafts rank low.
func priorityFor(doc model.Document) string {
	if _, published := doc.PublishedAt(); published {
		return model.PriorityHigh
	}
	if doc.Featured() || infoPageTypes[doc.Type] {
		return model.PriorityMedium
	}
	return model.PriorityLow
}

// Statistics aggregates translation task lifecycle counts, optionally
// restricted to tasks targeting one document type. This reports who is
// assigned to what, a different signal from live field completeness.
func (w *Workflow) Statistics(ctx context.Context, docTypeFilter string) (model.TaskStatistics, error) {
	q := store.Query{Type: model.TypeTranslationTask}
	if docTypeFilter != "" {
		q.Eq = map[string]string{"documentType": docTypeFilter}
	}

	docs, err := w.reader.Query(ctx, q)
	if err != nil {
		w.logger.Error("aggregating task statistics failed",
			"category", model.EventCategoryTranslation, "filter", docTypeFilter, "error", err)
		return model.TaskStatistics{}, fmt.Errorf("listing translation tasks: %w", err)
	}

	stats := model.TaskStatistics{
		ByLanguage: make(map[string]model.LanguageTaskStats, len(model.Languages)),
	}
	for _, code := range model.Languages {
		stats.ByLanguage[code] = model.LanguageTaskStats{}
	}

	for _, doc := range docs {
		stats.Total++
		language := doc.Get("language").String()
		perLang := stats.ByLanguage[language]
		switch doc.Get("status").String() {
		case model.TaskStatusCompleted:
			stats.Completed++
			perLang.Completed++
		case model.TaskStatusInProgress:
			stats.InProgress++
			perLang.Pending++
		default:
			stats.Pending++
			perLang.Pending++
		}
		if model.IsContentLanguage(language) {
			stats.ByLanguage[language] = perLang
		}
	}

	return stats, nil
}
