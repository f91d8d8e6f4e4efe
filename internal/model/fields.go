// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// FieldKind tags the shape of a required field. The kind is decided once
// per document type instead of being inferred from the value at analysis
// time.
type FieldKind string

const (
	// FieldText is a MultilingualText value; word counts contribute to
	// the per-language totals.
	FieldText FieldKind = "text"
	// FieldRichText is a MultilingualText value holding markdown; word
	// counts are taken on the rendered plain text.
	FieldRichText FieldKind = "richText"
	// FieldSlug is a MultilingualSlug value; presence is checked per
	// language but no words are counted.
	FieldSlug FieldKind = "slug"
	// FieldPlain is a non-multilingual value the completeness analysis
	// ignores.
	FieldPlain FieldKind = "plain"
)

// FieldSpec names one required field of a document type.
type FieldSpec struct {
	Path string
	Kind FieldKind
}

// RequiredFields lists the default required fields per document type,
// in the order editors see them. Callers may pass their own list to the
// analyzers; these are the site's defaults.
var RequiredFields = map[string][]FieldSpec{
	TypePage: {
		{Path: "title", Kind: FieldText},
		{Path: "slug", Kind: FieldSlug},
		{Path: "body", Kind: FieldRichText},
	},
	TypeNewsEvent: {
		{Path: "title", Kind: FieldText},
		{Path: "slug", Kind: FieldSlug},
		{Path: "excerpt", Kind: FieldText},
		{Path: "content", Kind: FieldRichText},
	},
	TypeStaffMember: {
		{Path: "name", Kind: FieldText},
		{Path: "designation", Kind: FieldText},
		{Path: "biography", Kind: FieldRichText},
	},
	TypeFacility: {
		{Path: "name", Kind: FieldText},
		{Path: "description", Kind: FieldRichText},
	},
	TypeAcademicProgram: {
		{Path: "title", Kind: FieldText},
		{Path: "slug", Kind: FieldSlug},
		{Path: "description", Kind: FieldRichText},
		{Path: "curriculum", Kind: FieldRichText},
	},
	TypeAdmissionInfo: {
		{Path: "title", Kind: FieldText},
		{Path: "instructions", Kind: FieldRichText},
	},
}

// RequiredFieldsFor returns the default required fields for a document
// type, or nil when the type is unknown.
func RequiredFieldsFor(docType string) []FieldSpec {
	return RequiredFields[docType]
}
