// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package translation implements the translation-completeness engine:
// per-language quality heuristics, document completeness analysis, the
// translator work queue and the persisted task registry.
package translation

import (
	"regexp"
	"strings"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/lang"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/util"
)

// minContentWords is the threshold below which content is flagged as
// very short.
const minContentWords = 5

// placeholderPatterns match boilerplate or marker strings standing in
// for real content. All matching is case-insensitive.
var placeholderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\[[^\]]*translation needed[^\]]*\]`),
	regexp.MustCompile(`(?i)lorem ipsum`),
	regexp.MustCompile(`(?i)placeholder`),
	regexp.MustCompile(`(?i)todo`),
}

// AnalyzeQuality applies the content quality heuristics to a single
// language's text. Warnings accumulate across rules; the report is
// valid only when no warnings were raised. The rules are heuristic and
// accept false positives on short or mixed-script content.
func AnalyzeQuality(text string, l lang.Language) model.QualityReport {
	report := model.QualityReport{
		Warnings:    []string{},
		Suggestions: []string{},
	}

	if strings.TrimSpace(text) == "" {
		report.Warnings = append(report.Warnings, "content is empty")
		report.Suggestions = append(report.Suggestions, "add "+l.Name+" content for this field")
		return report
	}

	other := lang.Other(l)
	if l.LatinScript {
		// Latin-script content should not carry the other script's runes.
		if lang.ContainsScript(text, other.Script) {
			report.Warnings = append(report.Warnings,
				"wrong script: content contains "+other.Name+" characters")
			report.Suggestions = append(report.Suggestions,
				"move the "+other.Name+" text to the "+other.Code+" field")
		}
	} else {
		if !lang.ContainsScript(text, l.Script) {
			report.Warnings = append(report.Warnings,
				"wrong script: content contains no "+l.Name+" characters")
			report.Suggestions = append(report.Suggestions,
				"write this field in "+l.NativeName)
		}
		if lang.ContainsFunctionWord(text, other) {
			report.Warnings = append(report.Warnings,
				"possibly untranslated: content contains common "+other.Name+" words")
			report.Suggestions = append(report.Suggestions,
				"check whether the "+other.Name+" source text was left in place")
		}
	}

	if util.CountWords(text) < minContentWords {
		report.Warnings = append(report.Warnings, "very short content")
		report.Suggestions = append(report.Suggestions,
			"expand the content to at least a full sentence")
	}

	for _, pattern := range placeholderPatterns {
		if pattern.MatchString(text) {
			report.Warnings = append(report.Warnings, "placeholder text present")
			report.Suggestions = append(report.Suggestions,
				"replace the placeholder with real content")
			break
		}
	}

	report.IsValid = len(report.Warnings) == 0
	return report
}

// AnalyzeQualityByCode is AnalyzeQuality addressed by language code.
// Unknown codes are analyzed as English.
func AnalyzeQualityByCode(text, code string) model.QualityReport {
	l, ok := lang.Lookup(code)
	if !ok {
		l = lang.English
	}
	return AnalyzeQuality(text, l)
}
