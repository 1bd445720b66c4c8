// Copyright (c) 2025-2026 MathLog Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs periodic maintenance tasks.
package scheduler

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mathlog/mathlog-go/internal/model"
	"github.com/mathlog/mathlog-go/internal/store"
)

// pruneSchedule runs the event log cleanup nightly at 03:00.
const pruneSchedule = "0 3 * * *"

// Scheduler handles scheduled maintenance like event log pruning.
type Scheduler struct {
	db        *sql.DB
	cron      *cron.Cron
	logger    *slog.Logger
	retention time.Duration
}

// New creates a scheduler that keeps event log entries for retentionDays.
func New(db *sql.DB, logger *slog.Logger, retentionDays int) *Scheduler {
	return &Scheduler{
		db:        db,
		cron:      cron.New(),
		logger:    logger,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
	}
}

// Start registers the nightly event log prune job and begins the scheduler.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(pruneSchedule, func() {
		if err := s.pruneEvents(context.Background()); err != nil {
			s.logger.Error("failed to prune event log", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// AddJob registers an additional periodic job using standard cron syntax.
func (s *Scheduler) AddJob(spec string, job func()) error {
	if _, err := s.cron.AddFunc(spec, job); err != nil {
		return fmt.Errorf("adding job %q: %w", spec, err)
	}
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

// pruneEvents deletes event log entries older than the retention window and
// records the cleanup itself.
func (s *Scheduler) pruneEvents(ctx context.Context) error {
	queries := store.New(s.db)
	cutoff := time.Now().UTC().Add(-s.retention)

	deleted, err := queries.DeleteEventsBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return nil
	}

	s.logger.Info("pruned event log", "deleted", deleted, "cutoff", cutoff)

	err = queries.CreateEvent(ctx, store.CreateEventParams{
		Level:    model.EventLevelInfo,
		Category: model.EventCategorySystem,
		Message:  fmt.Sprintf("Pruned %d event log entries older than %s", deleted, cutoff.Format(time.RFC3339)),
	})
	if err != nil {
		s.logger.Warn("failed to log event prune", "error", err)
	}
	return nil
}
