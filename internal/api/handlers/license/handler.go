// Package license exposes license CRUD and the manual notify route.
package license

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/api/dto"
	"github.com/licensure/licensure/internal/api/respond"
	"github.com/licensure/licensure/internal/config"
	"github.com/licensure/licensure/internal/model"
	"github.com/licensure/licensure/internal/notify"
	licenserepo "github.com/licensure/licensure/internal/repository/license"
	licensesvc "github.com/licensure/licensure/internal/service/license"
)

type licenseService interface {
	Create(ctx context.Context, strategy retry.Strategy, in licensesvc.CreateInput) (model.License, error)
	Update(ctx context.Context, strategy retry.Strategy, id uuid.UUID, in licensesvc.UpdateInput) (model.License, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]model.License, error)
}

type notifier interface {
	DispatchByID(ctx context.Context, id uuid.UUID) (notify.Result, error)
}

// Handler serves the /api/licenses routes.
type Handler struct {
	service   licenseService
	notifier  notifier
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a license handler.
func NewHandler(s licenseService, n notifier, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, notifier: n, validator: v, cfg: cfg}
}

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func parseDatePtr(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// List handles GET /api/licenses.
func (h *Handler) List(c *ginext.Context) {
	licenses, err := h.service.List(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list licenses")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if licenses == nil {
		licenses = []model.License{}
	}
	respond.OK(c.Writer, licenses)
}

// Create handles POST /api/licenses.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateLicenseRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	issued, err := parseDate(req.IssuedDate)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid issued_date"))
		return
	}
	expiry, err := parseDate(req.ExpiryDate)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid expiry_date"))
		return
	}
	start, err := parseDatePtr(req.StartDate)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid start_date"))
		return
	}

	created, err := h.service.Create(c.Request.Context(), h.cfg.Retry, licensesvc.CreateInput{
		Name:              req.Name,
		Provider:          req.Provider,
		Cost:              req.Cost,
		IssuedDate:        issued,
		StartDate:         start,
		ExpiryDate:        expiry,
		Status:            req.Status,
		Description:       req.Description,
		NotifySixMonth:    req.NotifySixMonth,
		NotifyMonthly:     req.NotifyMonthly,
		NotifyDailyLast30: req.NotifyDailyLast30,
		ResponsibleIDs:    req.ResponsibleIDs,
		StakeholderIDs:    req.StakeholderIDs,
	})
	if err != nil {
		h.failFromStoreError(c, err, "failed to create license")
		return
	}

	respond.Created(c.Writer, created)
}

// Update handles PUT /api/licenses/:id.
func (h *Handler) Update(c *ginext.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var req dto.UpdateLicenseRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	issued, err := parseDatePtr(req.IssuedDate)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid issued_date"))
		return
	}
	expiry, err := parseDatePtr(req.ExpiryDate)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid expiry_date"))
		return
	}
	start, err := parseDatePtr(req.StartDate)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid start_date"))
		return
	}

	updated, err := h.service.Update(c.Request.Context(), h.cfg.Retry, id, licensesvc.UpdateInput{
		Name:              req.Name,
		Provider:          req.Provider,
		Cost:              req.Cost,
		IssuedDate:        issued,
		StartDate:         start,
		ExpiryDate:        expiry,
		Status:            req.Status,
		Description:       req.Description,
		NotifySixMonth:    req.NotifySixMonth,
		NotifyMonthly:     req.NotifyMonthly,
		NotifyDailyLast30: req.NotifyDailyLast30,
		ResponsibleIDs:    req.ResponsibleIDs,
		StakeholderIDs:    req.StakeholderIDs,
	})
	if err != nil {
		h.failFromStoreError(c, err, "failed to update license")
		return
	}

	respond.OK(c.Writer, updated)
}

// Delete handles DELETE /api/licenses/:id.
func (h *Handler) Delete(c *ginext.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, licenserepo.ErrLicenseNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("license not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete license")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]bool{"ok": true, "deleted": true})
}

// Notify handles POST /api/licenses/:id/notify: a synchronous dispatch
// returning the aggregated result.
func (h *Handler) Notify(c *ginext.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	result, err := h.notifier.DispatchByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, licenserepo.ErrLicenseNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("license not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("manual notify failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("failed to send notifications"))
		return
	}

	if !result.OK {
		respond.Fail(c.Writer, http.StatusBadRequest, errors.New(result.Err))
		return
	}

	respond.OK(c.Writer, result)
}

func (h *Handler) idParam(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("idStr", idStr).Msg("invalid license id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}

// failFromStoreError maps repository errors onto API status codes.
func (h *Handler) failFromStoreError(c *ginext.Context, err error, logMsg string) {
	if errors.Is(err, licenserepo.ErrLicenseNotFound) {
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("license not found"))
		return
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503":
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid responsible/stakeholder selection"))
			return
		case "23505":
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("license already exists (duplicate unique value)"))
			return
		}
	}

	zlog.Logger.Error().Err(err).Msg(logMsg)
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
