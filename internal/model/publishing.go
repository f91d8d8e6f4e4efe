// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Publishing workflow states.
const (
	StatusDraft     = "draft"
	StatusReview    = "review"
	StatusApproved  = "approved"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// PublishingStatus is the authoritative workflow state embedded in a
// document, with actor and timestamp for each transition taken. The
// document-level publishedAt/publishedBy mirror the published transition
// for consumers that only care about publish time.
type PublishingStatus struct {
	Status             string     `json:"status"`
	SubmittedAt        *time.Time `json:"submittedAt,omitempty"`
	SubmittedBy        string     `json:"submittedBy,omitempty"`
	ApprovedAt         *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy         string     `json:"approvedBy,omitempty"`
	RejectedAt         *time.Time `json:"rejectedAt,omitempty"`
	RejectedBy         string     `json:"rejectedBy,omitempty"`
	PublishedAt        *time.Time `json:"publishedAt,omitempty"`
	PublishedBy        string     `json:"publishedBy,omitempty"`
	UnpublishedAt      *time.Time `json:"unpublishedAt,omitempty"`
	UnpublishedBy      string     `json:"unpublishedBy,omitempty"`
	ArchivedAt         *time.Time `json:"archivedAt,omitempty"`
	ArchivedBy         string     `json:"archivedBy,omitempty"`
	ScheduledPublishAt *time.Time `json:"scheduledPublishAt,omitempty"`
	Notes              string     `json:"notes,omitempty"`
}

// IsPublished returns true if the workflow state is published.
func (p PublishingStatus) IsPublished() bool {
	return p.Status == StatusPublished
}

// IsDraft returns true if the workflow state is draft.
func (p PublishingStatus) IsDraft() bool {
	return p.Status == StatusDraft
}
