// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package markdown converts article markdown to sanitized HTML.
// Articles embed LaTeX math in $...$ and $$...$$ delimiters; the
// delimiters pass through untouched so a client-side renderer such as
// KaTeX can process them.
package markdown

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// htmlSanitizer uses bluemonday's UGCPolicy which allows safe HTML tags
// while stripping dangerous elements like <script> and event handlers.
var htmlSanitizer = bluemonday.UGCPolicy()

// Render converts markdown content to sanitized HTML.
func Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return htmlSanitizer.Sanitize(buf.String()), nil
}
