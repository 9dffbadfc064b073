// Package license implements license CRUD on top of the repository and
// the immediate six-month send path.
package license

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/model"
	"github.com/licensure/licensure/internal/notify"
	"github.com/licensure/licensure/internal/rabbitmq/queue"
)

type licenseRepo interface {
	Create(ctx context.Context, lic model.License, responsibleIDs, stakeholderIDs []uuid.UUID) (model.License, error)
	Update(ctx context.Context, lic model.License, responsibleIDs, stakeholderIDs []uuid.UUID, clearSixMonthSent bool) (model.License, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LicenseByID(ctx context.Context, id uuid.UUID) (model.License, error)
	List(ctx context.Context) ([]model.License, error)
}

type jobPublisher interface {
	Publish(job queue.NotifyJob, strategy retry.Strategy) error
}

// CreateInput carries a validated create request.
type CreateInput struct {
	Name              string
	Provider          string
	Cost              float64
	IssuedDate        time.Time
	StartDate         *time.Time
	ExpiryDate        time.Time
	Status            string
	Description       *string
	NotifySixMonth    bool
	NotifyMonthly     bool
	NotifyDailyLast30 bool
	ResponsibleIDs    []uuid.UUID
	StakeholderIDs    []uuid.UUID
}

// UpdateInput carries a partial update; nil fields keep the stored
// value. Person links are always replaced.
type UpdateInput struct {
	Name              *string
	Provider          *string
	Cost              *float64
	IssuedDate        *time.Time
	StartDate         *time.Time
	ExpiryDate        *time.Time
	Status            *string
	Description       *string
	NotifySixMonth    *bool
	NotifyMonthly     *bool
	NotifyDailyLast30 *bool
	ResponsibleIDs    []uuid.UUID
	StakeholderIDs    []uuid.UUID
}

// Service implements license operations.
type Service struct {
	repo licenseRepo
	jobs jobPublisher
	now  func() time.Time
}

// NewService creates a license service.
func NewService(repo licenseRepo, jobs jobPublisher) *Service {
	return &Service{repo: repo, jobs: jobs, now: time.Now}
}

// WithClock overrides the service's reference clock.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create stores a new license and, when it is already inside its
// six-month window, enqueues the first reminder right away instead of
// waiting for the next daily scan.
func (s *Service) Create(ctx context.Context, strategy retry.Strategy, in CreateInput) (model.License, error) {
	status := in.Status
	if status == "" {
		status = model.LicenseStatusActive
	}

	lic := model.License{
		Name:              in.Name,
		Provider:          in.Provider,
		Cost:              in.Cost,
		IssuedDate:        in.IssuedDate,
		StartDate:         in.StartDate,
		ExpiryDate:        in.ExpiryDate,
		Status:            status,
		Description:       in.Description,
		NotifySixMonth:    in.NotifySixMonth,
		NotifyMonthly:     in.NotifyMonthly,
		NotifyDailyLast30: in.NotifyDailyLast30,
	}

	created, err := s.repo.Create(ctx, lic, in.ResponsibleIDs, in.StakeholderIDs)
	if err != nil {
		return model.License{}, fmt.Errorf("create license: %w", err)
	}

	s.enqueueImmediateSixMonth(created, strategy)

	return created, nil
}

// Update merges the input over the stored row and replaces person
// links. The six-month one-shot is re-armed only when notify_six_month
// transitions from disabled to enabled.
func (s *Service) Update(ctx context.Context, strategy retry.Strategy, id uuid.UUID, in UpdateInput) (model.License, error) {
	existing, err := s.repo.LicenseByID(ctx, id)
	if err != nil {
		return model.License{}, fmt.Errorf("load license: %w", err)
	}

	merged := existing
	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Provider != nil {
		merged.Provider = *in.Provider
	}
	if in.Cost != nil {
		merged.Cost = *in.Cost
	}
	if in.IssuedDate != nil {
		merged.IssuedDate = *in.IssuedDate
	}
	if in.StartDate != nil {
		merged.StartDate = in.StartDate
	}
	if in.ExpiryDate != nil {
		merged.ExpiryDate = *in.ExpiryDate
	}
	if in.Status != nil {
		merged.Status = *in.Status
	}
	if in.Description != nil {
		merged.Description = in.Description
	}
	if in.NotifySixMonth != nil {
		merged.NotifySixMonth = *in.NotifySixMonth
	}
	if in.NotifyMonthly != nil {
		merged.NotifyMonthly = *in.NotifyMonthly
	}
	if in.NotifyDailyLast30 != nil {
		merged.NotifyDailyLast30 = *in.NotifyDailyLast30
	}

	clearSixMonthSent := !existing.NotifySixMonth && merged.NotifySixMonth

	updated, err := s.repo.Update(ctx, merged, in.ResponsibleIDs, in.StakeholderIDs, clearSixMonthSent)
	if err != nil {
		return model.License{}, fmt.Errorf("update license: %w", err)
	}

	s.enqueueImmediateSixMonth(updated, strategy)

	return updated, nil
}

// Delete removes a license and its person links.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete license: %w", err)
	}

	return nil
}

// List returns all licenses with their person links.
func (s *Service) List(ctx context.Context) ([]model.License, error) {
	licenses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}

	return licenses, nil
}

// enqueueImmediateSixMonth publishes the fast-path reminder when the
// license is already inside its six-month window. Any failure here is
// logged only: the license write has committed and must stay committed.
func (s *Service) enqueueImmediateSixMonth(lic model.License, strategy retry.Strategy) {
	if !notify.ShouldSendImmediateSixMonth(lic, s.now()) {
		return
	}

	job := queue.NotifyJob{
		LicenseID:        lic.ID,
		Reason:           string(notify.ReasonSixMonth),
		MarkSixMonthSent: true,
	}
	if err := s.jobs.Publish(job, strategy); err != nil {
		zlog.Logger.Warn().Err(err).
			Str("license_id", lic.ID.String()).
			Msg("failed to enqueue immediate six-month reminder")
	}
}
