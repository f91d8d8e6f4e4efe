// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package translation

import (
	"strings"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/util"
)

// AnalyzeCompleteness walks the required fields of a document and
// reports, per language, which are missing and how many words are
// present. It is a pure function of the document snapshot and field
// list; nothing is cached.
func AnalyzeCompleteness(doc model.Document, fields []model.FieldSpec) map[string]model.TranslationStatus {
	statuses := make(map[string]model.TranslationStatus, len(model.Languages))
	for _, code := range model.Languages {
		statuses[code] = analyzeLanguage(doc, fields, code)
	}
	return statuses
}

// analyzeLanguage computes the completeness of one language.
func analyzeLanguage(doc model.Document, fields []model.FieldSpec, code string) model.TranslationStatus {
	status := model.TranslationStatus{
		Language:      code,
		MissingFields: []string{},
	}

	for _, field := range fields {
		switch field.Kind {
		case model.FieldText:
			value := doc.Get(field.Path + "." + code)
			if strings.TrimSpace(value.String()) == "" {
				status.MissingFields = append(status.MissingFields, field.Path)
			} else {
				status.WordCount += util.CountWords(value.String())
			}
		case model.FieldRichText:
			value := doc.Get(field.Path + "." + code)
			if strings.TrimSpace(value.String()) == "" {
				status.MissingFields = append(status.MissingFields, field.Path)
			} else {
				status.WordCount += util.CountContentWords(value.String())
			}
		case model.FieldSlug:
			if doc.Get(field.Path+"."+code+".current").String() == "" {
				status.MissingFields = append(status.MissingFields, field.Path)
			}
		case model.FieldPlain:
			// Not multilingual; nothing to check.
		}
	}

	status.IsComplete = len(status.MissingFields) == 0
	return status
}

// IsFullyTranslated reports whether every language of the analysis is
// complete.
func IsFullyTranslated(statuses map[string]model.TranslationStatus) bool {
	for _, s := range statuses {
		if !s.IsComplete {
			return false
		}
	}
	return true
}
