// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/mathlog/mathlog-go/internal/model"
	"github.com/mathlog/mathlog-go/internal/store"
	"github.com/mathlog/mathlog-go/internal/testutil"
)

func TestPruneEvents(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	queries := store.New(db)

	for _, msg := range []string{"old event", "stale event", "recent event"} {
		err := queries.CreateEvent(ctx, store.CreateEventParams{
			Level:    model.EventLevelInfo,
			Category: model.EventCategorySystem,
			Message:  msg,
		})
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	// Backdate two entries beyond the retention window.
	backdated := time.Now().UTC().Add(-40 * 24 * time.Hour)
	_, err := db.ExecContext(ctx,
		`UPDATE events SET created_at = ? WHERE message IN ('old event', 'stale event')`,
		backdated)
	if err != nil {
		t.Fatalf("backdating events: %v", err)
	}

	s := New(db, testutil.TestLogger(), 30)
	if err := s.pruneEvents(ctx); err != nil {
		t.Fatalf("pruneEvents: %v", err)
	}

	events, err := queries.ListEvents(ctx, store.ListEventsParams{Limit: 10})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}

	// The recent event survives and the prune itself is recorded.
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	for _, e := range events {
		if e.Message == "old event" || e.Message == "stale event" {
			t.Errorf("expired event %q survived prune", e.Message)
		}
	}
}

func TestPruneEvents_NothingExpired(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	ctx := context.Background()
	queries := store.New(db)
	err := queries.CreateEvent(ctx, store.CreateEventParams{
		Level:    model.EventLevelInfo,
		Category: model.EventCategorySystem,
		Message:  "recent event",
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	s := New(db, testutil.TestLogger(), 30)
	if err := s.pruneEvents(ctx); err != nil {
		t.Fatalf("pruneEvents: %v", err)
	}

	// No prune marker event is written when nothing was deleted.
	events, err := queries.ListEvents(ctx, store.ListEventsParams{Limit: 10})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events, want 1", len(events))
	}
}

func TestAddJob_InvalidSpec(t *testing.T) {
	db, cleanup := testutil.TestDB(t)
	defer cleanup()

	s := New(db, testutil.TestLogger(), 30)
	if err := s.AddJob("not a cron spec", func() {}); err == nil {
		t.Error("expected error for invalid cron spec")
	}
}
