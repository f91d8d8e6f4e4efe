// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Translation task statuses.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
)

// Editorial priority tiers for translation work.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// TranslationStatus is the per-language result of a completeness
// analysis. It is derived from the current document state on every call
// and never persisted.
type TranslationStatus struct {
	Language      string   `json:"language"`
	IsComplete    bool     `json:"isComplete"`
	MissingFields []string `json:"missingFields"`
	WordCount     int      `json:"wordCount"`
}

// TranslationWorkflowItem is one entry in the translator work queue:
// a document with at least one incomplete language, plus its priority.
type TranslationWorkflowItem struct {
	DocumentID   string                       `json:"documentId"`
	DocumentType string                       `json:"documentType"`
	Title        MultilingualText             `json:"title"`
	Status       map[string]TranslationStatus `json:"status"`
	Priority     string                       `json:"priority"`
}

// TranslationTask is a persisted unit of translation work: translate the
// incomplete fields of one document into one language. Stored as a
// document of type "translationTask"; uniqueness per (document, language)
// is not enforced by the store.
type TranslationTask struct {
	ID          string     `json:"id,omitempty"`
	DocumentID  string     `json:"documentId"`
	Language    string     `json:"language"`
	AssignedTo  string     `json:"assignedTo"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedBy string     `json:"completedBy,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// TaskStatistics aggregates translation task lifecycle counts. This is
// a different signal from live document completeness: it answers "is
// someone assigned", not "is the content translated".
type TaskStatistics struct {
	Total      int                          `json:"total"`
	Completed  int                          `json:"completed"`
	InProgress int                          `json:"inProgress"`
	Pending    int                          `json:"pending"`
	ByLanguage map[string]LanguageTaskStats `json:"byLanguage"`
}

// LanguageTaskStats holds per-language task counts.
type LanguageTaskStats struct {
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}
