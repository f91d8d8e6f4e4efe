// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Document types published by the site. The validator keeps a rule set
// per type; unknown types are rejected at publish time.
const (
	TypePage            = "page"
	TypeNewsEvent       = "newsEvent"
	TypeStaffMember     = "staffMember"
	TypeFacility        = "facility"
	TypeAcademicProgram = "academicProgram"
	TypeAdmissionInfo   = "admissionInfo"
	TypeTranslationTask = "translationTask"
)

// Document is a schema-less content document as returned by the store.
// The raw JSON is kept as-is; typed accessors resolve dotted paths on
// demand so documents of any shape can be inspected without a schema.
type Document struct {
	ID   string
	Type string
	Raw  []byte
}

// Get resolves a dotted path inside the document body.
func (d Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d.Raw, path)
}

// Text returns the value of a multilingual text field in the given
// language, falling back to the other language when empty.
func (d Document) Text(path, lang string) string {
	return d.TextOr(path, lang, "")
}

// TextOr is Text with a caller-supplied fallback used when neither
// language carries a value.
func (d Document) TextOr(path, lang, fallback string) string {
	if v := d.Get(path + "." + lang); strings.TrimSpace(v.String()) != "" {
		return v.String()
	}
	if v := d.Get(path + "." + OtherLanguage(lang)); strings.TrimSpace(v.String()) != "" {
		return v.String()
	}
	return fallback
}

// Slug returns the slug token of a multilingual slug field in the given
// language, with the same other-language fallback as Text.
func (d Document) Slug(path, lang string) string {
	if v := d.Get(path + "." + lang + ".current"); v.String() != "" {
		return v.String()
	}
	return d.Get(path + "." + OtherLanguage(lang) + ".current").String()
}

// IsTextComplete reports whether a multilingual text field carries a
// non-empty value in both languages.
func (d Document) IsTextComplete(path string) bool {
	for _, lang := range Languages {
		if strings.TrimSpace(d.Get(path+"."+lang).String()) == "" {
			return false
		}
	}
	return true
}

// IsSlugComplete reports whether a multilingual slug field carries a
// non-empty token in both languages.
func (d Document) IsSlugComplete(path string) bool {
	for _, lang := range Languages {
		if d.Get(path+"."+lang+".current").String() == "" {
			return false
		}
	}
	return true
}

// Title returns the document's title as a typed value. Staff and
// facility documents carry their display name in "name" instead.
func (d Document) Title() MultilingualText {
	path := "title"
	if !d.Get(path).Exists() && d.Get("name").Exists() {
		path = "name"
	}
	return MultilingualText{
		English: d.Get(path + "." + LangEnglish).String(),
		Bengali: d.Get(path + "." + LangBengali).String(),
	}
}

// Featured reports whether the document is flagged as featured content
// or a leadership profile.
func (d Document) Featured() bool {
	return d.Get("featured").Bool() || d.Get("isLeadership").Bool()
}

// PublishedAt returns the document's publish timestamp, if any.
func (d Document) PublishedAt() (time.Time, bool) {
	return d.timeField("publishedAt")
}

// ScheduledPublishAt returns the scheduled publish timestamp, if any.
func (d Document) ScheduledPublishAt() (time.Time, bool) {
	return d.timeField("publishingStatus.scheduledPublishAt")
}

// WorkflowStatus returns the document's publishing workflow state.
// Documents without one are drafts.
func (d Document) WorkflowStatus() string {
	if s := d.Get("publishingStatus.status").String(); s != "" {
		return s
	}
	return StatusDraft
}

func (d Document) timeField(path string) (time.Time, bool) {
	v := d.Get(path)
	if !v.Exists() || v.String() == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v.String())
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
