// Package maillog exposes the read-only mail log view.
package maillog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/api/respond"
	"github.com/licensure/licensure/internal/model"
)

type mailLogService interface {
	List(ctx context.Context) ([]model.MailLog, error)
}

// Handler serves GET /api/mail-logs.
type Handler struct {
	service mailLogService
}

// NewHandler creates a mail log handler.
func NewHandler(s mailLogService) *Handler {
	return &Handler{service: s}
}

// List handles GET /api/mail-logs.
func (h *Handler) List(c *ginext.Context) {
	logs, err := h.service.List(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list mail logs")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if logs == nil {
		logs = []model.MailLog{}
	}
	respond.OK(c.Writer, logs)
}
