// Package scheduler runs the daily expiry scan at a fixed wall-clock
// time.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/model"
	"github.com/licensure/licensure/internal/notify"
	"github.com/licensure/licensure/internal/rabbitmq/queue"
)

type licenseLister interface {
	ListActive(ctx context.Context) ([]model.License, error)
}

type jobPublisher interface {
	Publish(job queue.NotifyJob, strategy retry.Strategy) error
}

// Scheduler walks all active licenses once per day, evaluates their
// trigger rules and enqueues a notify job for every license that is due.
type Scheduler struct {
	licenses licenseLister
	jobs     jobPublisher
	hour     int
	minute   int
	now      func() time.Time
}

// New creates a scheduler firing daily at the given local time.
func New(licenses licenseLister, jobs jobPublisher, hour, minute int) *Scheduler {
	return &Scheduler{
		licenses: licenses,
		jobs:     jobs,
		hour:     hour,
		minute:   minute,
		now:      time.Now,
	}
}

// WithClock overrides the scheduler's reference clock.
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// Run blocks until ctx is cancelled, waking at the configured time each
// day. A failed scan is logged and retried on the next scheduled run.
func (s *Scheduler) Run(ctx context.Context, strategy retry.Strategy) {
	zlog.Logger.Info().
		Int("hour", s.hour).
		Int("minute", s.minute).
		Msg("daily expiry scheduler started")

	for {
		now := s.now()
		next := nextRunTime(now, s.hour, s.minute)

		select {
		case <-time.After(next.Sub(now)):
			if err := s.RunScan(ctx, strategy); err != nil {
				zlog.Logger.Error().Err(err).Msg("daily expiry scan failed")
			}
		case <-ctx.Done():
			zlog.Logger.Info().Msg("daily expiry scheduler stopped")
			return
		}
	}
}

// RunScan performs one pass over all active licenses. A datastore
// failure aborts the scan; a single license's publish failure does not.
func (s *Scheduler) RunScan(ctx context.Context, strategy retry.Strategy) error {
	start := s.now()

	licenses, err := s.licenses.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list active licenses: %w", err)
	}

	var enqueued int
	for _, lic := range licenses {
		if !lic.NotifyEnabled() {
			continue
		}

		decision := notify.Evaluate(lic, s.now())
		if !decision.ShouldSend {
			continue
		}

		job := queue.NotifyJob{
			LicenseID:        lic.ID,
			Reason:           string(decision.Reason),
			MarkSixMonthSent: decision.MarkSixMonthSent,
		}
		if err := s.jobs.Publish(job, strategy); err != nil {
			zlog.Logger.Error().Err(err).
				Str("license_id", lic.ID.String()).
				Str("reason", job.Reason).
				Msg("failed to enqueue notify job")
			continue
		}
		enqueued++
	}

	zlog.Logger.Info().
		Int("licenses", len(licenses)).
		Int("enqueued", enqueued).
		Dur("duration", s.now().Sub(start)).
		Msg("daily expiry scan finished")

	return nil
}

// nextRunTime returns the next occurrence of hour:minute after now.
func nextRunTime(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !now.Before(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
