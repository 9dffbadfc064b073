package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/model"
)

var (
	// ErrNoTransport means no SMTP credentials are configured. It is
	// distinct from a delivery failure.
	ErrNoTransport = errors.New("mail transport is not configured")

	// ErrNoRecipients means the license has no linked people.
	ErrNoRecipients = errors.New("no recipients linked to this license")
)

// Transport delivers a single rendered message.
type Transport interface {
	Send(to, subject, body string) error
}

type licenseSource interface {
	LicenseByID(ctx context.Context, id uuid.UUID) (model.License, error)
}

type recipientSource interface {
	LinkedToLicense(ctx context.Context, licenseID uuid.UUID) ([]model.Recipient, error)
}

type templateSource interface {
	TemplateSet(ctx context.Context) (model.TemplateSet, error)
}

type mailLogStore interface {
	Append(ctx context.Context, entry model.MailLog) error
}

type transportSource interface {
	Transport(ctx context.Context) (Transport, error)
}

// Result aggregates one dispatch over all linked recipients. Partial
// success is success: OK is false only when zero recipients received
// the mail, with Err carrying the first failure.
type Result struct {
	OK     bool   `json:"ok"`
	Sent   int    `json:"sent"`
	Failed int    `json:"failed"`
	Total  int    `json:"total"`
	Err    string `json:"error,omitempty"`
}

// Dispatcher renders and delivers expiry reminders for one license to
// every linked person, logging each attempt.
type Dispatcher struct {
	licenses   licenseSource
	recipients recipientSource
	templates  templateSource
	logs       mailLogStore
	transports transportSource
	now        func() time.Time
}

// NewDispatcher creates a dispatcher over the given collaborators.
func NewDispatcher(
	licenses licenseSource,
	recipients recipientSource,
	templates templateSource,
	logs mailLogStore,
	transports transportSource,
) *Dispatcher {
	return &Dispatcher{
		licenses:   licenses,
		recipients: recipients,
		templates:  templates,
		logs:       logs,
		transports: transports,
		now:        time.Now,
	}
}

// WithClock overrides the dispatcher's reference clock.
func (d *Dispatcher) WithClock(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

// DispatchByID resolves the license and dispatches reminders for it.
// A datastore failure, including an unknown id, is returned as an error;
// delivery-level failures are reported inside the Result.
func (d *Dispatcher) DispatchByID(ctx context.Context, id uuid.UUID) (Result, error) {
	lic, err := d.licenses.LicenseByID(ctx, id)
	if err != nil {
		return Result{}, fmt.Errorf("resolve license: %w", err)
	}

	return d.DispatchLicense(ctx, lic)
}

// DispatchLicense sends the expiry reminder for an already-loaded
// license row to every linked recipient. A failure for one recipient
// never aborts the remaining recipients.
func (d *Dispatcher) DispatchLicense(ctx context.Context, lic model.License) (Result, error) {
	transport, err := d.transports.Transport(ctx)
	if err != nil {
		if errors.Is(err, ErrNoTransport) {
			return Result{Err: ErrNoTransport.Error()}, nil
		}
		return Result{}, fmt.Errorf("mail transport: %w", err)
	}

	daysLeft := DaysUntil(lic.ExpiryDate, d.now())

	templates, err := d.templates.TemplateSet(ctx)
	if err != nil {
		// A template store failure must never block delivery.
		zlog.Logger.Warn().Err(err).Msg("template lookup failed, using defaults")
		templates = model.DefaultTemplateSet()
	}

	recipients, err := d.recipients.LinkedToLicense(ctx, lic.ID)
	if err != nil {
		return Result{}, fmt.Errorf("load recipients: %w", err)
	}
	if len(recipients) == 0 {
		return Result{Err: ErrNoRecipients.Error()}, nil
	}

	var sent, failed int
	var firstFailure string

	for _, rec := range recipients {
		msg := BuildMessage(lic, rec, daysLeft, templates)

		status := model.MailStatusSent
		if sendErr := transport.Send(rec.Email, msg.Subject, msg.Body); sendErr != nil {
			status = model.MailStatusFailed
			if firstFailure == "" {
				firstFailure = sendErr.Error()
			}
			zlog.Logger.Warn().
				Err(sendErr).
				Str("license_id", lic.ID.String()).
				Str("email", rec.Email).
				Msg("notification send failed")
		}

		entry := model.MailLog{
			LicenseID: lic.ID,
			PersonID:  rec.ID,
			Email:     rec.Email,
			MailType:  rec.Responsibility,
			Subject:   msg.Subject,
			Body:      msg.Body,
			Status:    status,
			SentAt:    d.now(),
		}
		if logErr := d.logs.Append(ctx, entry); logErr != nil {
			zlog.Logger.Error().
				Err(logErr).
				Str("license_id", lic.ID.String()).
				Msg("failed to append mail log")
		}

		if status == model.MailStatusSent {
			sent++
		} else {
			failed++
		}
	}

	if sent == 0 {
		if firstFailure == "" {
			firstFailure = "all notification sends failed"
		}
		return Result{Sent: sent, Failed: failed, Total: sent + failed, Err: firstFailure}, nil
	}

	return Result{OK: true, Sent: sent, Failed: failed, Total: sent + failed}, nil
}
