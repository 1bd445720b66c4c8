// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple title", "Introduction to Calculus", "introduction-to-calculus"},
		{"accents removed", "Évariste Galois Théorie", "evariste-galois-theorie"},
		{"punctuation dropped", "Limits & Continuity: Part 1!", "limits-continuity-part-1"},
		{"collapsed hyphens", "a -- b", "a-b"},
		{"trimmed hyphens", " -leading and trailing- ", "leading-and-trailing"},
		{"already a slug", "probability-bayes-theorem", "probability-bayes-theorem"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	valid := []string{"intro-to-calculus-limits", "a", "post-2", "x1-y2"}
	for _, s := range valid {
		if !IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "Has-Upper", "space here", "-leading", "trailing-", "double--hyphen", "üñíçödé"}
	for _, s := range invalid {
		if IsValidSlug(s) {
			t.Errorf("IsValidSlug(%q) = true, want false", s)
		}
	}
}
