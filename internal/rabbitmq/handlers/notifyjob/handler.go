// Package notifyjob handles queued expiry-notification jobs on the
// worker side.
package notifyjob

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/notify"
	"github.com/licensure/licensure/internal/rabbitmq/queue"
)

type dispatcher interface {
	DispatchByID(ctx context.Context, id uuid.UUID) (notify.Result, error)
}

type sixMonthMarker interface {
	ClaimSixMonthSent(ctx context.Context, id uuid.UUID) (bool, error)
	ReleaseSixMonthSent(ctx context.Context, id uuid.UUID) error
}

// Handler executes one notify job: claim the six-month one-shot when
// the job requires it, dispatch, and release the claim if nothing was
// delivered.
type Handler struct {
	dispatcher dispatcher
	licenses   sixMonthMarker
}

// NewHandler creates a notify-job handler.
func NewHandler(d dispatcher, licenses sixMonthMarker) *Handler {
	return &Handler{dispatcher: d, licenses: licenses}
}

// HandleJob processes a single job. Errors are logged, never returned:
// one license's failure must not take down the worker.
func (h *Handler) HandleJob(ctx context.Context, job queue.NotifyJob) {
	claimed := false

	if job.MarkSixMonthSent {
		ok, err := h.licenses.ClaimSixMonthSent(ctx, job.LicenseID)
		if err != nil {
			zlog.Logger.Error().Err(err).
				Str("license_id", job.LicenseID.String()).
				Msg("failed to claim six-month send")
			return
		}
		if !ok {
			// Another worker or replica already sent the one-shot.
			zlog.Logger.Info().
				Str("license_id", job.LicenseID.String()).
				Msg("six-month reminder already claimed, skipping")
			return
		}
		claimed = true
	}

	result, err := h.dispatcher.DispatchByID(ctx, job.LicenseID)
	if err != nil || !result.OK {
		if claimed {
			if relErr := h.licenses.ReleaseSixMonthSent(ctx, job.LicenseID); relErr != nil {
				zlog.Logger.Error().Err(relErr).
					Str("license_id", job.LicenseID.String()).
					Msg("failed to release six-month claim")
			}
		}

		if err != nil {
			zlog.Logger.Error().Err(err).
				Str("license_id", job.LicenseID.String()).
				Str("reason", job.Reason).
				Msg("notification dispatch failed")
		} else {
			zlog.Logger.Warn().
				Str("license_id", job.LicenseID.String()).
				Str("reason", job.Reason).
				Str("error", result.Err).
				Msg("notification not sent")
		}
		return
	}

	zlog.Logger.Info().
		Str("license_id", job.LicenseID.String()).
		Str("reason", job.Reason).
		Int("sent", result.Sent).
		Int("failed", result.Failed).
		Msg("notification dispatched")
}
