// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package publishing implements structural validation of content
// documents and the publishing workflow state machine built on top of
// it.
package publishing

import (
	"fmt"
	"strings"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/util"
)

// Bilingual length divergence thresholds: warn when the two languages'
// lengths differ by more than half their average, once the average
// exceeds 50 characters.
const (
	divergenceMinAvgLen = 50
	divergenceRatio     = 0.5
)

// Rule checks one structural aspect of a document and returns its
// findings.
type Rule func(doc model.Document) []model.ValidationError

// Validator holds the per-type structural rule sets. Structural
// validation is independent of translation completeness; it is the gate
// the publishing workflow consults before a document may go live.
type Validator struct {
	rules map[string][]Rule
}

// NewValidator creates a validator with the site's default rule sets
// registered.
func NewValidator() *Validator {
	v := &Validator{rules: make(map[string][]Rule)}

	v.Register(model.TypePage,
		RequireText("title"),
		RequireSlug("slug"),
		RequireText("body"),
		LengthDivergence("body"),
	)
	v.Register(model.TypeNewsEvent,
		RequireText("title"),
		RequireSlug("slug"),
		RequireText("excerpt"),
		RequireText("content"),
		RequireEnum("category", "news", "event", "achievement", "announcement"),
		eventRequiresDate,
		LengthDivergence("content"),
	)
	v.Register(model.TypeStaffMember,
		RequireText("name"),
		RequireText("designation"),
		leadershipRequiresBiography,
	)
	v.Register(model.TypeFacility,
		RequireText("name"),
		RequireText("description"),
		RequireImages("images"),
		LengthDivergence("description"),
	)
	v.Register(model.TypeAcademicProgram,
		RequireText("title"),
		RequireSlug("slug"),
		RequireText("description"),
		LengthDivergence("description"),
	)
	v.Register(model.TypeAdmissionInfo,
		RequireText("title"),
		RequireText("instructions"),
		LengthDivergence("instructions"),
	)

	return v
}

// Register sets the rule set for a document type, replacing any
// previous registration.
func (v *Validator) Register(docType string, rules ...Rule) {
	v.rules[docType] = rules
}

// Validate runs the type-appropriate rule set over a document. A
// document is valid iff it has zero error-severity findings; warnings
// never block publishing. Unknown types yield a single error.
func (v *Validator) Validate(doc model.Document) model.ValidationResult {
	result := model.ValidationResult{
		Errors:   []model.ValidationError{},
		Warnings: []model.ValidationError{},
	}

	rules, ok := v.rules[doc.Type]
	if !ok {
		result.Errors = append(result.Errors, model.ValidationError{
			Field:    "type",
			Message:  fmt.Sprintf("unknown content type %q", doc.Type),
			Severity: model.SeverityError,
		})
		return result
	}

	for _, rule := range rules {
		for _, finding := range rule(doc) {
			if finding.Severity == model.SeverityError {
				result.Errors = append(result.Errors, finding)
			} else {
				result.Warnings = append(result.Warnings, finding)
			}
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// BatchValidationItem is one document's outcome within a batch run.
type BatchValidationItem struct {
	DocumentID string                 `json:"documentId"`
	Result     model.ValidationResult `json:"result"`
}

// BatchValidate validates every document with its type's rule set,
// invoking onProgress after each one. Unknown types produce their
// synthetic error result; no item aborts the batch.
func (v *Validator) BatchValidate(docs []model.Document, onProgress func(done, total int)) []BatchValidationItem {
	items := make([]BatchValidationItem, 0, len(docs))
	for i, doc := range docs {
		items = append(items, BatchValidationItem{
			DocumentID: doc.ID,
			Result:     v.Validate(doc),
		})
		if onProgress != nil {
			onProgress(i+1, len(docs))
		}
	}
	return items
}

// RequireText requires a multilingual text field to be present in both
// languages.
func RequireText(path string) Rule {
	return func(doc model.Document) []model.ValidationError {
		var findings []model.ValidationError
		for _, code := range model.Languages {
			if strings.TrimSpace(doc.Get(path+"."+code).String()) == "" {
				findings = append(findings, model.ValidationError{
					Field:    path + "." + code,
					Message:  fmt.Sprintf("%s is required in %s", path, code),
					Severity: model.SeverityError,
				})
			}
		}
		return findings
	}
}

// RequireSlug requires a multilingual slug to be present and well
// formed in both languages. A missing slug also yields a warning with a
// transliterated suggestion from the title.
func RequireSlug(path string) Rule {
	return func(doc model.Document) []model.ValidationError {
		var findings []model.ValidationError
		missing := false
		for _, code := range model.Languages {
			current := doc.Get(path + "." + code + ".current").String()
			if current == "" {
				missing = true
				findings = append(findings, model.ValidationError{
					Field:    path + "." + code,
					Message:  fmt.Sprintf("%s is required in %s", path, code),
					Severity: model.SeverityError,
				})
				continue
			}
			if !util.IsValidSlug(current) {
				findings = append(findings, model.ValidationError{
					Field:    path + "." + code,
					Message:  fmt.Sprintf("%q is not a valid slug", current),
					Severity: model.SeverityError,
				})
			}
		}
		if missing {
			if suggestion := util.SuggestSlug(doc.Title()); suggestion != "" {
				findings = append(findings, model.ValidationError{
					Field:    path,
					Message:  fmt.Sprintf("suggested slug: %s", suggestion),
					Severity: model.SeverityWarning,
				})
			}
		}
		return findings
	}
}

// RequireEnum requires a plain field to hold one of the allowed values.
func RequireEnum(path string, allowed ...string) Rule {
	return func(doc model.Document) []model.ValidationError {
		value := doc.Get(path).String()
		if value == "" {
			return []model.ValidationError{{
				Field:    path,
				Message:  path + " is required",
				Severity: model.SeverityError,
			}}
		}
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return []model.ValidationError{{
			Field:    path,
			Message:  fmt.Sprintf("%q is not one of %s", value, strings.Join(allowed, ", ")),
			Severity: model.SeverityError,
		}}
	}
}

// RequireImages requires an array field to hold at least one entry.
func RequireImages(path string) Rule {
	return func(doc model.Document) []model.ValidationError {
		if len(doc.Get(path).Array()) == 0 {
			return []model.ValidationError{{
				Field:    path,
				Message:  "at least one image is required",
				Severity: model.SeverityError,
			}}
		}
		return nil
	}
}

// LengthDivergence warns when the two languages of a text field differ
// in length by more than half their average, once the content is long
// enough for the comparison to mean anything.
func LengthDivergence(path string) Rule {
	return func(doc model.Document) []model.ValidationError {
		en := len([]rune(doc.Get(path + "." + model.LangEnglish).String()))
		bn := len([]rune(doc.Get(path + "." + model.LangBengali).String()))
		if en == 0 || bn == 0 {
			return nil
		}
		avg := float64(en+bn) / 2
		if avg <= divergenceMinAvgLen {
			return nil
		}
		diff := float64(en - bn)
		if diff < 0 {
			diff = -diff
		}
		if diff > avg*divergenceRatio {
			return []model.ValidationError{{
				Field:    path,
				Message:  fmt.Sprintf("%s length differs sharply between languages (en %d, bn %d chars)", path, en, bn),
				Severity: model.SeverityWarning,
			}}
		}
		return nil
	}
}

// eventRequiresDate: a news item in the event category must carry an
// event date.
func eventRequiresDate(doc model.Document) []model.ValidationError {
	if doc.Get("category").String() != "event" {
		return nil
	}
	if doc.Get("eventDate").String() == "" {
		return []model.ValidationError{{
			Field:    "eventDate",
			Message:  "event date is required for event items",
			Severity: model.SeverityError,
		}}
	}
	return nil
}

// leadershipRequiresBiography: leadership staff profiles must carry a
// biography in both languages.
func leadershipRequiresBiography(doc model.Document) []model.ValidationError {
	if !doc.Get("isLeadership").Bool() {
		return nil
	}
	return RequireText("biography")(doc)
}
