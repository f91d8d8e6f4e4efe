// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"bytes"
	"html"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// textSanitizer strips every HTML tag, leaving only text content.
var textSanitizer = bluemonday.StrictPolicy()

// CountWords counts whitespace-separated words in a string. Empty and
// whitespace-only input yields 0.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// PlainText renders markdown content and strips all markup, returning
// the readable text. HTML is stripped before rendering: goldmark drops
// raw HTML blocks outright, which would lose their text content.
// Input that fails to render is stripped as-is so word counts never
// disappear entirely.
func PlainText(markdown string) string {
	src := textSanitizer.Sanitize(markdown)

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		slog.Debug("markdown conversion failed, stripping raw input", "error", err)
	} else {
		src = buf.String()
	}
	return strings.TrimSpace(html.UnescapeString(textSanitizer.Sanitize(src)))
}

// CountContentWords counts the words of authored markdown content after
// stripping markup.
func CountContentWords(markdown string) int {
	return CountWords(PlainText(markdown))
}
