// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package lang describes the two content languages of the site: their
// scripts, tags and the function-word lists used by the content quality
// heuristics.
package lang

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"

	"github.com/shafayet9780/madrasatul-quran-dhaka-sub000/internal/model"
)

// Language describes one content language.
type Language struct {
	Code       string
	Name       string
	NativeName string
	Direction  string
	Tag        language.Tag
	// Script is the Unicode block native text is written in.
	Script *unicode.RangeTable
	// LatinScript is true when the language is written in Latin script.
	LatinScript bool
	// FunctionWords are common short words of the language, used to spot
	// text left untranslated in the other language's fields.
	FunctionWords []string
}

// English and Bengali are the two configured content languages.
var (
	English = Language{
		Code:        model.LangEnglish,
		Name:        "English",
		NativeName:  "English",
		Direction:   "ltr",
		Tag:         language.English,
		Script:      unicode.Latin,
		LatinScript: true,
		FunctionWords: []string{
			"the", "and", "is", "are", "was", "were", "of", "to", "in",
			"for", "with", "on", "at", "by", "from", "this", "that",
		},
	}
	Bengali = Language{
		Code:       model.LangBengali,
		Name:       "Bengali",
		NativeName: "বাংলা",
		Direction:  "ltr",
		Tag:        language.Bengali,
		Script:     unicode.Bengali,
		FunctionWords: []string{
			"এবং", "এই", "যে", "করে", "থেকে", "হয়", "আমরা", "তার",
			"একটি", "জন্য", "সাথে", "হবে",
		},
	}
)

var supported = []Language{English, Bengali}

var matcher = language.NewMatcher([]language.Tag{English.Tag, Bengali.Tag})

// Lookup returns the Language for a content language code.
func Lookup(code string) (Language, bool) {
	for _, l := range supported {
		if l.Code == strings.ToLower(code) {
			return l, true
		}
	}
	return Language{}, false
}

// Other returns the counterpart language.
func Other(l Language) Language {
	if l.Code == English.Code {
		return Bengali
	}
	return English
}

// Match finds the best supported language for an Accept-Language header
// or a bare language code. Unrecognized input maps to English.
func Match(acceptLang string) Language {
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		tag, err := language.Parse(acceptLang)
		if err != nil {
			return English
		}
		tags = []language.Tag{tag}
	}
	_, idx, _ := matcher.Match(tags...)
	if idx >= 0 && idx < len(supported) {
		return supported[idx]
	}
	return English
}

// ContainsScript reports whether the text contains at least one rune of
// the given script block.
func ContainsScript(text string, script *unicode.RangeTable) bool {
	for _, r := range text {
		if unicode.Is(script, r) {
			return true
		}
	}
	return false
}

// ContainsFunctionWord reports whether the text contains one of the
// language's function words as a standalone word (surrounded by spaces
// or at string boundaries). Matching is case-insensitive.
func ContainsFunctionWord(text string, l Language) bool {
	fields := strings.Fields(strings.ToLower(text))
	for _, f := range fields {
		for _, w := range l.FunctionWords {
			if f == w {
				return true
			}
		}
	}
	return false
}
