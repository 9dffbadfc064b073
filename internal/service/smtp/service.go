// Package smtp manages stored sender credentials and builds the mail
// transport from them.
package smtp

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/config"
	"github.com/licensure/licensure/internal/model"
	"github.com/licensure/licensure/internal/notify"
	smtprepo "github.com/licensure/licensure/internal/repository/smtp"
	"github.com/licensure/licensure/internal/secrets"
	"github.com/licensure/licensure/pkg/mailer"
)

type settingsRepo interface {
	Get(ctx context.Context) (model.SMTPSettings, error)
	Save(ctx context.Context, senderEmail, senderPasswordEnc string) error
}

// Service guards the SMTP settings behind the module password and
// turns stored credentials into a mail transport.
type Service struct {
	repo settingsRepo
	enc  *secrets.Encryptor
	mail config.Mail
	pass string
}

// NewService creates an SMTP settings service.
func NewService(repo settingsRepo, enc *secrets.Encryptor, mail config.Mail, modulePassword string) *Service {
	return &Service{repo: repo, enc: enc, mail: mail, pass: modulePassword}
}

// VerifyPassword checks the shared module password.
func (s *Service) VerifyPassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(s.pass)) == 1
}

// View returns the sender address and whether a password is stored.
// The password itself never leaves the service.
func (s *Service) View(ctx context.Context) (model.SMTPSettingsView, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, smtprepo.ErrSettingsNotFound) {
			return model.SMTPSettingsView{SenderEmail: s.mail.Username}, nil
		}
		return model.SMTPSettingsView{}, fmt.Errorf("load smtp settings: %w", err)
	}

	view := model.SMTPSettingsView{
		SenderEmail: row.SenderEmail,
		HasPassword: row.SenderPasswordEnc != "",
	}
	if !row.UpdatedAt.IsZero() {
		updatedAt := row.UpdatedAt
		view.UpdatedAt = &updatedAt
	}
	if view.SenderEmail == "" {
		view.SenderEmail = s.mail.Username
	}

	return view, nil
}

// Save encrypts and stores new sender credentials.
func (s *Service) Save(ctx context.Context, senderEmail, senderPassword string) (model.SMTPSettingsView, error) {
	enc, err := s.enc.Encrypt(senderPassword)
	if err != nil {
		return model.SMTPSettingsView{}, fmt.Errorf("encrypt password: %w", err)
	}

	if err := s.repo.Save(ctx, senderEmail, enc); err != nil {
		return model.SMTPSettingsView{}, fmt.Errorf("save smtp settings: %w", err)
	}

	return s.View(ctx)
}

// credentials resolves the effective sender, preferring the stored row
// over the env-level fallback.
func (s *Service) credentials(ctx context.Context) (string, string, error) {
	email := s.mail.Username
	password := s.mail.Password

	row, err := s.repo.Get(ctx)
	switch {
	case err == nil:
		if row.SenderEmail != "" {
			email = row.SenderEmail
		}
		if row.SenderPasswordEnc != "" {
			plain, decErr := s.enc.Decrypt(row.SenderPasswordEnc)
			if decErr != nil {
				zlog.Logger.Warn().Err(decErr).Msg("stored smtp password is unreadable")
				password = ""
			} else {
				password = plain
			}
		}
	case errors.Is(err, smtprepo.ErrSettingsNotFound):
		// env fallback only
	default:
		return "", "", fmt.Errorf("load smtp settings: %w", err)
	}

	return email, password, nil
}

// Transport builds the mail transport from the effective credentials.
// It returns notify.ErrNoTransport when no usable sender is configured,
// which callers treat differently from a delivery failure.
func (s *Service) Transport(ctx context.Context) (notify.Transport, error) {
	email, password, err := s.credentials(ctx)
	if err != nil {
		return nil, err
	}
	if email == "" || password == "" {
		return nil, notify.ErrNoTransport
	}

	from := fmt.Sprintf("%s <%s>", s.mail.FromName, email)

	return mailer.NewClient(
		s.mail.SMTPHost, s.mail.SMTPPort, email, password, from, s.mail.SendTimeout,
	), nil
}

// SendTest delivers a probe message to the sender's own address.
func (s *Service) SendTest(ctx context.Context) error {
	email, _, err := s.credentials(ctx)
	if err != nil {
		return err
	}

	transport, err := s.Transport(ctx)
	if err != nil {
		return err
	}

	return transport.Send(
		email,
		"Mail test from License Management System",
		"If you received this, SMTP auth is working.",
	)
}
