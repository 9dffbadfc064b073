// Package person exposes people CRUD.
package person

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/licensure/licensure/internal/api/dto"
	"github.com/licensure/licensure/internal/api/respond"
	"github.com/licensure/licensure/internal/model"
	personrepo "github.com/licensure/licensure/internal/repository/person"
	personsvc "github.com/licensure/licensure/internal/service/person"
)

type personService interface {
	Create(ctx context.Context, in personsvc.CreateInput) (model.Person, error)
	Update(ctx context.Context, id uuid.UUID, in personsvc.UpdateInput) (model.Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
	PersonByID(ctx context.Context, id uuid.UUID) (model.Person, error)
	List(ctx context.Context, includeInactive bool) ([]model.Person, error)
}

// Handler serves the /api/people routes.
type Handler struct {
	service   personService
	validator *validator.Validate
}

// NewHandler creates a person handler.
func NewHandler(s personService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// List handles GET /api/people.
func (h *Handler) List(c *ginext.Context) {
	includeInactive := c.Query("includeInactive") == "true"

	people, err := h.service.List(c.Request.Context(), includeInactive)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list people")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	if people == nil {
		people = []model.Person{}
	}
	respond.OK(c.Writer, people)
}

// Get handles GET /api/people/:id.
func (h *Handler) Get(c *ginext.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	p, err := h.service.PersonByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, personrepo.ErrPersonNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("person not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get person")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, p)
}

// Create handles POST /api/people.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreatePersonRequest

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

	created, err := h.service.Create(c.Request.Context(), personsvc.CreateInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Department:  req.Department,
		Role:        req.Role,
		Designation: req.Designation,
	})
	if err != nil {
		h.failFromServiceError(c, err, "failed to create person")
		return
	}

	respond.Created(c.Writer, created)
}

// Update handles PUT /api/people/:id.
func (h *Handler) Update(c *ginext.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var req dto.UpdatePersonRequest

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

	updated, err := h.service.Update(c.Request.Context(), id, personsvc.UpdateInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Department:  req.Department,
		Role:        req.Role,
		Designation: req.Designation,
	})
	if err != nil {
		h.failFromServiceError(c, err, "failed to update person")
		return
	}

	respond.OK(c.Writer, updated)
}

// Delete handles DELETE /api/people/:id.
func (h *Handler) Delete(c *ginext.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, personrepo.ErrPersonNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("person not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to delete person")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, map[string]bool{"ok": true, "deleted": true})
}

func (h *Handler) idParam(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Warn().Str("idStr", idStr).Msg("invalid person id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) failFromServiceError(c *ginext.Context, err error, logMsg string) {
	switch {
	case errors.Is(err, personrepo.ErrPersonNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("person not found"))
		return
	case errors.Is(err, personsvc.ErrEmailTaken):
		respond.Fail(c.Writer, http.StatusConflict, err)
		return
	case errors.Is(err, personsvc.ErrDesignationRequired),
		errors.Is(err, personsvc.ErrNoFieldsToUpdate),
		errors.Is(err, personsvc.ErrInvalidRole):
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("person already exists (duplicate unique value)"))
		return
	}

	zlog.Logger.Error().Err(err).Msg(logMsg)
	respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
}
