// Package smtp exposes the password-protected SMTP settings routes.
package smtp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/api/dto"
	"github.com/licensure/licensure/internal/api/respond"
	"github.com/licensure/licensure/internal/model"
	"github.com/licensure/licensure/internal/notify"
)

type smtpService interface {
	VerifyPassword(candidate string) bool
	View(ctx context.Context) (model.SMTPSettingsView, error)
	Save(ctx context.Context, senderEmail, senderPassword string) (model.SMTPSettingsView, error)
	SendTest(ctx context.Context) error
}

// Handler serves the /api/smtp-settings and /api/mail-test routes.
type Handler struct {
	service   smtpService
	validator *validator.Validate
}

// NewHandler creates an SMTP settings handler.
func NewHandler(s smtpService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// modulePassword extracts the shared password from the header or,
// failing that, the query string.
func modulePassword(c *ginext.Context) string {
	if p := c.GetHeader("x-module-password"); p != "" {
		return p
	}
	return c.Query("password")
}

// Get handles GET /api/smtp-settings. The stored password is never
// returned, only whether one exists.
func (h *Handler) Get(c *ginext.Context) {
	if !h.service.VerifyPassword(modulePassword(c)) {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid module password"))
		return
	}

	view, err := h.service.View(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get smtp settings")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, view)
}

// Update handles PUT /api/smtp-settings.
func (h *Handler) Update(c *ginext.Context) {
	var req dto.UpdateSMTPRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("sender email and password are required"))
		return
	}

	if !h.service.VerifyPassword(req.ModulePassword) {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid module password"))
		return
	}

	view, err := h.service.Save(c.Request.Context(), req.SenderEmail, req.SenderPassword)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to save smtp settings")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, view)
}

// SendTest handles POST /api/mail-test. It sends a probe message to the
// configured sender address using the stored credentials.
func (h *Handler) SendTest(c *ginext.Context) {
	if !h.service.VerifyPassword(modulePassword(c)) {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("invalid module password"))
		return
	}

	if err := h.service.SendTest(c.Request.Context()); err != nil {
		if errors.Is(err, notify.ErrNoTransport) {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("no smtp credentials configured"))
			return
		}
		zlog.Logger.Error().Err(err).Msg("failed to send test mail")
		respond.Fail(c.Writer, http.StatusBadGateway, fmt.Errorf("mail delivery failed: %s", err.Error()))
		return
	}

	respond.OK(c.Writer, map[string]bool{"ok": true})
}
