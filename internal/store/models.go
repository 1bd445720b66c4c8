// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"
)

// Post is a published article row. Posts are immutable after creation; there
// are no update or delete operations.
type Post struct {
	ID         int64
	Title      string
	Slug       string
	Content    string
	Summary    string
	CoverUrl   sql.NullString
	ReadTime   int64
	Difficulty string
	Topic      string
	AuthorName string
	AuthorRole string
	CreatedAt  time.Time
}

// Subscriber is a newsletter subscriber row. Write-only in this system.
type Subscriber struct {
	ID        int64
	Email     string
	CreatedAt time.Time
}

// Event is an event-log row written by the logging handler.
type Event struct {
	ID        int64
	Level     string
	Category  string
	Message   string
	Metadata  string
	CreatedAt time.Time
}
