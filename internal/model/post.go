// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines entity-level constants and validation helpers shared
// by the storage layer, the API handlers, and the client.
package model

// Post difficulty levels. These are a convention, not a store-level
// enumeration: the column stays an open string so new levels can be
// introduced without a migration.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Difficulties lists the conventional difficulty levels in teaching order.
var Difficulties = []string{
	DifficultyBeginner,
	DifficultyIntermediate,
	DifficultyAdvanced,
}

// Topics lists the conventional post topics. Like difficulties, topics are
// free text in the store; this list only drives UI dropdowns and seeds.
var Topics = []string{
	"Algebra",
	"Calculus",
	"Geometry",
	"Number Theory",
	"Probability",
	"Linear Algebra",
}

// IsKnownDifficulty reports whether d is one of the conventional levels.
func IsKnownDifficulty(d string) bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}
