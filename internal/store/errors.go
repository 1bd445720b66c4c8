// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import "strings"

// IsUniqueViolation reports whether err is a SQLite UNIQUE constraint
// failure. Both the modernc and mattn drivers surface the same message text,
// so a string match works for either.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
