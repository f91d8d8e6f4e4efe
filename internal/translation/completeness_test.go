// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package translation

import (
	"reflect"
	"testing"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
)

func pageDoc(raw string) model.Document {
	return model.Document{ID: "page-1", Type: model.TypePage, Raw: []byte(raw)}
}

func TestAnalyzeCompletenessPartialTitle(t *testing.T) {
	doc := pageDoc(`{"title": {"en": "Hi", "bn": ""}}`)
	fields := []model.FieldSpec{{Path: "title", Kind: model.FieldText}}

	statuses := AnalyzeCompleteness(doc, fields)

	en := statuses[model.LangEnglish]
	if !en.IsComplete || len(en.MissingFields) != 0 {
		t.Errorf("en status = %+v, want complete with no missing fields", en)
	}
	if en.WordCount != 1 {
		t.Errorf("en word count = %d, want 1", en.WordCount)
	}

	bn := statuses[model.LangBengali]
	if bn.IsComplete {
		t.Errorf("bn status = %+v, want incomplete", bn)
	}
	if !reflect.DeepEqual(bn.MissingFields, []string{"title"}) {
		t.Errorf("bn missing fields = %v, want [title]", bn.MissingFields)
	}
}

func TestAnalyzeCompletenessFieldKinds(t *testing.T) {
	doc := pageDoc(`{
		"title": {"en": "About Our School", "bn": "আমাদের বিদ্যালয় সম্পর্কে"},
		"slug": {"en": {"current": "about"}, "bn": {"current": ""}},
		"body": {"en": "# History\n\nFounded in **1985** by local scholars.", "bn": ""},
		"order": 3
	}`)
	fields := []model.FieldSpec{
		{Path: "title", Kind: model.FieldText},
		{Path: "slug", Kind: model.FieldSlug},
		{Path: "body", Kind: model.FieldRichText},
		{Path: "order", Kind: model.FieldPlain},
	}

	statuses := AnalyzeCompleteness(doc, fields)

	en := statuses[model.LangEnglish]
	if !en.IsComplete {
		t.Errorf("en missing fields = %v, want none", en.MissingFields)
	}
	// title (3) + body rendered text (7); slugs and plain fields add none.
	if en.WordCount != 10 {
		t.Errorf("en word count = %d, want 10", en.WordCount)
	}

	bn := statuses[model.LangBengali]
	if bn.IsComplete {
		t.Error("bn reported complete with slug and body missing")
	}
	if !reflect.DeepEqual(bn.MissingFields, []string{"slug", "body"}) {
		t.Errorf("bn missing fields = %v, want [slug body]", bn.MissingFields)
	}
	if bn.WordCount != 3 {
		t.Errorf("bn word count = %d, want 3", bn.WordCount)
	}
}

func TestAnalyzeCompletenessAbsentVsEmpty(t *testing.T) {
	// A wholly absent field and an empty-string field are both
	// incomplete for both languages.
	for _, raw := range []string{`{}`, `{"title": {"en": "", "bn": ""}}`} {
		statuses := AnalyzeCompleteness(pageDoc(raw), []model.FieldSpec{{Path: "title", Kind: model.FieldText}})
		for _, code := range model.Languages {
			if statuses[code].IsComplete {
				t.Errorf("raw %s: %s reported complete", raw, code)
			}
		}
	}
}

func TestAnalyzeCompletenessIsPure(t *testing.T) {
	doc := pageDoc(`{"title": {"en": "Hello there world", "bn": "ওহে বিশ্ব"}}`)
	fields := []model.FieldSpec{{Path: "title", Kind: model.FieldText}}

	first := AnalyzeCompleteness(doc, fields)
	second := AnalyzeCompleteness(doc, fields)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analysis differs: %+v vs %+v", first, second)
	}
}

func TestIsFullyTranslated(t *testing.T) {
	complete := pageDoc(`{"title": {"en": "Hello", "bn": "হ্যালো"}}`)
	partial := pageDoc(`{"title": {"en": "Hello"}}`)
	fields := []model.FieldSpec{{Path: "title", Kind: model.FieldText}}

	if !IsFullyTranslated(AnalyzeCompleteness(complete, fields)) {
		t.Error("complete document reported untranslated")
	}
	if IsFullyTranslated(AnalyzeCompleteness(partial, fields)) {
		t.Error("partial document reported fully translated")
	}
}
