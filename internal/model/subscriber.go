// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"net/mail"
	"strings"
)

// NormalizeEmail lowercases and trims an email address for storage so the
// unique constraint is case-insensitive in practice.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsValidEmail reports whether the address parses as an RFC 5322 address
// with no display name.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject "Name <a@b>" forms; the subscription form sends a bare address.
	if addr.Address != email {
		return false
	}
	// mail.ParseAddress accepts local-only addresses like "a@b"; require a
	// dot in the domain to match what the subscription form promises users.
	at := strings.LastIndex(addr.Address, "@")
	if at < 0 || !strings.Contains(addr.Address[at+1:], ".") {
		return false
	}
	return true
}
