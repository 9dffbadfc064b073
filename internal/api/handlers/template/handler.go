// Package template exposes the message template editor routes.
package template

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/api/dto"
	"github.com/licensure/licensure/internal/api/respond"
	"github.com/licensure/licensure/internal/model"
)

type templateService interface {
	TemplateSet(ctx context.Context) (model.TemplateSet, error)
	Update(ctx context.Context, set model.TemplateSet) (model.TemplateSet, error)
}

// Handler serves the /api/message-templates routes.
type Handler struct {
	service   templateService
	validator *validator.Validate
}

// NewHandler creates a template handler.
func NewHandler(s templateService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Get handles GET /api/message-templates.
func (h *Handler) Get(c *ginext.Context) {
	set, err := h.service.TemplateSet(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get message templates")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, set)
}

// Update handles PUT /api/message-templates.
func (h *Handler) Update(c *ginext.Context) {
	var req dto.UpdateTemplatesRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("all template fields are required"))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), model.TemplateSet{
		ResponsibleSubject: req.ResponsibleSubject,
		ResponsibleBody:    req.ResponsibleBody,
		StakeholderSubject: req.StakeholderSubject,
		StakeholderBody:    req.StakeholderBody,
	})
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to update message templates")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, updated)
}
