// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"testing"
	"time"
)

func testDoc(raw string) Document {
	return Document{ID: "doc-1", Type: TypePage, Raw: []byte(raw)}
}

func TestDocumentText(t *testing.T) {
	doc := testDoc(`{
		"title": {"en": "About Us", "bn": "আমাদের সম্পর্কে"},
		"subtitle": {"en": "History"},
		"empty": {"en": "", "bn": ""}
	}`)

	tests := []struct {
		name string
		path string
		lang string
		want string
	}{
		{"both present en", "title", LangEnglish, "About Us"},
		{"both present bn", "title", LangBengali, "আমাদের সম্পর্কে"},
		{"fallback to english", "subtitle", LangBengali, "History"},
		{"both empty", "empty", LangEnglish, ""},
		{"missing field", "nothere", LangEnglish, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := doc.Text(tt.path, tt.lang); got != tt.want {
				t.Errorf("Text(%q, %q) = %q, want %q", tt.path, tt.lang, got, tt.want)
			}
		})
	}

	if got := doc.TextOr("nothere", LangEnglish, "fallback"); got != "fallback" {
		t.Errorf("TextOr fallback = %q, want %q", got, "fallback")
	}
}

func TestDocumentSlugAndCompleteness(t *testing.T) {
	doc := testDoc(`{
		"slug": {"en": {"current": "about-us"}},
		"title": {"en": "About Us", "bn": "আমাদের সম্পর্কে"}
	}`)

	if got := doc.Slug("slug", LangBengali); got != "about-us" {
		t.Errorf("Slug(bn) = %q, want fallback about-us", got)
	}
	if doc.IsSlugComplete("slug") {
		t.Error("IsSlugComplete = true with Bengali slug missing")
	}
	if !doc.IsTextComplete("title") {
		t.Error("IsTextComplete = false with both title languages present")
	}
	if doc.IsTextComplete("slug") {
		t.Error("IsTextComplete = true for a slug-shaped field")
	}
}

func TestDocumentWorkflowStatus(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"no publishing status", `{}`, StatusDraft},
		{"explicit review", `{"publishingStatus": {"status": "review"}}`, StatusReview},
		{"published", `{"publishingStatus": {"status": "published"}}`, StatusPublished},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := testDoc(tt.raw).WorkflowStatus(); got != tt.want {
				t.Errorf("WorkflowStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocumentTimestamps(t *testing.T) {
	doc := testDoc(`{
		"publishedAt": "2026-01-15T10:00:00Z",
		"publishingStatus": {"scheduledPublishAt": "2026-02-01T08:30:00Z"}
	}`)

	published, ok := doc.PublishedAt()
	if !ok {
		t.Fatal("PublishedAt() not found")
	}
	want := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	if !published.Equal(want) {
		t.Errorf("PublishedAt() = %v, want %v", published, want)
	}

	scheduled, ok := doc.ScheduledPublishAt()
	if !ok {
		t.Fatal("ScheduledPublishAt() not found")
	}
	if scheduled.Hour() != 8 || scheduled.Minute() != 30 {
		t.Errorf("ScheduledPublishAt() = %v, want 08:30 UTC", scheduled)
	}

	if _, ok := testDoc(`{}`).PublishedAt(); ok {
		t.Error("PublishedAt() = ok for document without timestamp")
	}
	if _, ok := testDoc(`{"publishedAt": "not-a-date"}`).PublishedAt(); ok {
		t.Error("PublishedAt() = ok for malformed timestamp")
	}
}

func TestDocumentTitle(t *testing.T) {
	titled := testDoc(`{"title": {"en": "About Us", "bn": "আমাদের সম্পর্কে"}}`)
	if got := titled.Title(); got.English != "About Us" || got.Bengali != "আমাদের সম্পর্কে" {
		t.Errorf("Title() = %+v", got)
	}

	// Staff and facility documents carry their display name in "name".
	named := Document{ID: "s1", Type: TypeStaffMember,
		Raw: []byte(`{"name": {"en": "Rahim Uddin", "bn": "রহিম উদ্দিন"}}`)}
	if got := named.Title(); got.English != "Rahim Uddin" {
		t.Errorf("Title() for named document = %+v", got)
	}
}

func TestDocumentFeatured(t *testing.T) {
	if !testDoc(`{"featured": true}`).Featured() {
		t.Error("Featured() = false for featured document")
	}
	if !testDoc(`{"isLeadership": true}`).Featured() {
		t.Error("Featured() = false for leadership profile")
	}
	if testDoc(`{}`).Featured() {
		t.Error("Featured() = true for plain document")
	}
}
