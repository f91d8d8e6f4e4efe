// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Validation severities. Errors block publishing; warnings are
// informational only.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ValidationError is a single structural finding for a document field.
type ValidationError struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// ValidationResult is the outcome of structural validation. IsValid is
// true iff there are zero error-severity findings; warnings never block.
type ValidationResult struct {
	IsValid  bool              `json:"isValid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// QualityReport is the outcome of the content quality heuristics for a
// single language's text. IsValid is true iff no warnings were raised.
// The heuristics accept false positives on short or mixed-script content.
type QualityReport struct {
	IsValid     bool     `json:"isValid"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}
