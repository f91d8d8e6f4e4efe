// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the core data types of the bilingual content
// workflow: multilingual fields, documents, translation tasks, publishing
// status and validation results.
package model

import "strings"

// Content language codes. Every piece of content on the site carries
// both languages.
const (
	LangEnglish = "en"
	LangBengali = "bn"
)

// Languages lists the two configured content languages in canonical order.
var Languages = []string{LangEnglish, LangBengali}

// OtherLanguage returns the counterpart of the given language code.
// Unknown codes fall back to English.
func OtherLanguage(lang string) string {
	if lang == LangEnglish {
		return LangBengali
	}
	return LangEnglish
}

// IsContentLanguage reports whether code is one of the configured
// content languages.
func IsContentLanguage(code string) bool {
	return code == LangEnglish || code == LangBengali
}

// MultilingualText holds a text value in both content languages.
// Either side may be empty while the content is being translated.
type MultilingualText struct {
	English string `json:"en,omitempty"`
	Bengali string `json:"bn,omitempty"`
}

// Value returns the raw value for the given language without fallback.
func (t MultilingualText) Value(lang string) string {
	if lang == LangBengali {
		return t.Bengali
	}
	return t.English
}

// Get returns the value for the given language, falling back to the
// other language when the requested one is empty.
func (t MultilingualText) Get(lang string) string {
	return t.GetOr(lang, "")
}

// GetOr returns the value for the given language. When the requested
// language is empty it falls back to the other language, and finally to
// the caller-supplied fallback. Partial translations degrade gracefully
// instead of rendering blank.
func (t MultilingualText) GetOr(lang, fallback string) string {
	if v := t.Value(lang); strings.TrimSpace(v) != "" {
		return v
	}
	if v := t.Value(OtherLanguage(lang)); strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// IsComplete reports whether both languages carry a non-empty value.
func (t MultilingualText) IsComplete() bool {
	return strings.TrimSpace(t.English) != "" && strings.TrimSpace(t.Bengali) != ""
}

// SlugValue is a single-language slug token as stored in a document.
type SlugValue struct {
	Current string `json:"current,omitempty"`
}

// MultilingualSlug holds a URL slug in both content languages.
type MultilingualSlug struct {
	English SlugValue `json:"en,omitempty"`
	Bengali SlugValue `json:"bn,omitempty"`
}

// Value returns the slug token for the given language without fallback.
func (s MultilingualSlug) Value(lang string) string {
	if lang == LangBengali {
		return s.Bengali.Current
	}
	return s.English.Current
}

// Get returns the slug for the given language, falling back to the
// other language when the requested one is empty.
func (s MultilingualSlug) Get(lang string) string {
	if v := s.Value(lang); v != "" {
		return v
	}
	return s.Value(OtherLanguage(lang))
}

// IsComplete reports whether both languages carry a non-empty slug.
func (s MultilingualSlug) IsComplete() bool {
	return s.English.Current != "" && s.Bengali.Current != ""
}
