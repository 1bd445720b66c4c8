// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package util provides URL slug generation and validation.
package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent strips combining marks after NFD decomposition, so "é" becomes "e".
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts a title to a URL-friendly slug: accents stripped,
// lowercased, non-alphanumeric runs collapsed to single hyphens.
func Slugify(s string) string {
	normalized, _, err := transform.String(deaccent, s)
	if err != nil {
		normalized = s
	}

	var b strings.Builder
	b.Grow(len(normalized))
	pendingHyphen := false
	for _, r := range strings.ToLower(normalized) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

// IsValidSlug reports whether s is lowercase letters, digits, and single
// interior hyphens only.
func IsValidSlug(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	prev := rune(0)
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
		case r == '-':
			if prev == '-' {
				return false
			}
		default:
			return false
		}
		prev = r
	}
	return true
}
