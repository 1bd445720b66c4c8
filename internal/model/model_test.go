// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestIsKnownDifficulty(t *testing.T) {
	for _, d := range Difficulties {
		if !IsKnownDifficulty(d) {
			t.Errorf("IsKnownDifficulty(%q) = false, want true", d)
		}
	}
	if IsKnownDifficulty("Expert") {
		t.Error("IsKnownDifficulty(\"Expert\") = true, want false")
	}
	if IsKnownDifficulty("") {
		t.Error("IsKnownDifficulty(\"\") = true, want false")
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"A@X.Com", "a@x.com"},
		{"  user@example.org  ", "user@example.org"},
		{"already@lower.net", "already@lower.net"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "first.last@sub.example.org", "user+tag@example.co"}
	for _, e := range valid {
		if !IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = false, want true", e)
		}
	}

	invalid := []string{"", "not-an-email", "missing@domain", "@example.com", "Name <a@x.com>", "two@@x.com"}
	for _, e := range invalid {
		if IsValidEmail(e) {
			t.Errorf("IsValidEmail(%q) = true, want false", e)
		}
	}
}
