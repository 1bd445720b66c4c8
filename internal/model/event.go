// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Event log levels.
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event log categories.
const (
	EventCategorySystem = "system"
	EventCategoryPost   = "post"
	EventCategoryCache  = "cache"
	EventCategoryAPI    = "api"
)
