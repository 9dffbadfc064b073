// Package person implements people CRUD with case-insensitive email
// uniqueness and revival of inactive rows.
package person

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/licensure/licensure/internal/model"
	personrepo "github.com/licensure/licensure/internal/repository/person"
)

var (
	ErrEmailTaken          = errors.New("person with this email already exists")
	ErrDesignationRequired = errors.New("designation required for stakeholder")
	ErrNoFieldsToUpdate    = errors.New("no fields provided for update")
	ErrInvalidRole         = errors.New("role must be RESPONSIBLE or STAKEHOLDER")
)

type personRepo interface {
	Create(ctx context.Context, p model.Person) (model.Person, error)
	Update(ctx context.Context, p model.Person) (model.Person, error)
	Delete(ctx context.Context, id uuid.UUID) error
	PersonByID(ctx context.Context, id uuid.UUID) (model.Person, error)
	PersonByEmail(ctx context.Context, email string) (model.Person, error)
	List(ctx context.Context, includeInactive bool) ([]model.Person, error)
}

// CreateInput carries a validated person create request.
type CreateInput struct {
	Name        string
	Email       string
	Phone       string
	Department  string
	Role        string
	Designation *string
}

// UpdateInput carries a partial person update; nil fields keep the
// stored value.
type UpdateInput struct {
	Name        *string
	Email       *string
	Phone       *string
	Department  *string
	Role        *string
	Designation *string
}

// Service implements person operations.
type Service struct {
	repo personRepo
}

// NewService creates a person service.
func NewService(repo personRepo) *Service {
	return &Service{repo: repo}
}

func normalizeRole(role string) string {
	return strings.ToUpper(strings.TrimSpace(role))
}

// Create stores a new person. When an inactive person already holds the
// email, the row is revived with the new details instead of failing on
// the unique constraint.
func (s *Service) Create(ctx context.Context, in CreateInput) (model.Person, error) {
	role := normalizeRole(in.Role)
	if role != model.RoleResponsible && role != model.RoleStakeholder {
		return model.Person{}, ErrInvalidRole
	}

	if role == model.RoleStakeholder && (in.Designation == nil || *in.Designation == "") {
		return model.Person{}, ErrDesignationRequired
	}

	existing, err := s.repo.PersonByEmail(ctx, in.Email)
	switch {
	case err == nil:
		if existing.Status != model.PersonStatusInactive {
			return model.Person{}, ErrEmailTaken
		}

		existing.Name = in.Name
		existing.Email = in.Email
		existing.Phone = in.Phone
		existing.Department = in.Department
		existing.Role = role
		existing.Designation = in.Designation
		existing.Status = model.PersonStatusActive

		revived, err := s.repo.Update(ctx, existing)
		if err != nil {
			return model.Person{}, fmt.Errorf("revive person: %w", err)
		}
		return revived, nil

	case errors.Is(err, personrepo.ErrPersonNotFound):
		// fall through to insert
	default:
		return model.Person{}, fmt.Errorf("check email: %w", err)
	}

	created, err := s.repo.Create(ctx, model.Person{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Department:  in.Department,
		Role:        role,
		Designation: in.Designation,
	})
	if err != nil {
		return model.Person{}, fmt.Errorf("create person: %w", err)
	}

	return created, nil
}

// Update merges the input over the stored person.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (model.Person, error) {
	if in.Name == nil && in.Email == nil && in.Phone == nil &&
		in.Department == nil && in.Role == nil && in.Designation == nil {
		return model.Person{}, ErrNoFieldsToUpdate
	}

	existing, err := s.repo.PersonByID(ctx, id)
	if err != nil {
		return model.Person{}, fmt.Errorf("load person: %w", err)
	}

	merged := existing
	if in.Name != nil {
		merged.Name = *in.Name
	}
	if in.Email != nil {
		merged.Email = *in.Email
	}
	if in.Phone != nil {
		merged.Phone = *in.Phone
	}
	if in.Department != nil {
		merged.Department = *in.Department
	}
	if in.Role != nil {
		merged.Role = normalizeRole(*in.Role)
		if merged.Role != model.RoleResponsible && merged.Role != model.RoleStakeholder {
			return model.Person{}, ErrInvalidRole
		}
	}
	if in.Designation != nil {
		merged.Designation = in.Designation
	}

	if merged.Role == model.RoleStakeholder && (merged.Designation == nil || *merged.Designation == "") {
		return model.Person{}, ErrDesignationRequired
	}

	updated, err := s.repo.Update(ctx, merged)
	if err != nil {
		return model.Person{}, fmt.Errorf("update person: %w", err)
	}

	return updated, nil
}

// Delete removes a person; license links cascade.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}

	return nil
}

// PersonByID returns one active person.
func (s *Service) PersonByID(ctx context.Context, id uuid.UUID) (model.Person, error) {
	p, err := s.repo.PersonByID(ctx, id)
	if err != nil {
		return model.Person{}, fmt.Errorf("get person: %w", err)
	}

	if p.Status == model.PersonStatusInactive {
		return model.Person{}, personrepo.ErrPersonNotFound
	}

	return p, nil
}

// List returns people, optionally including inactive rows.
func (s *Service) List(ctx context.Context, includeInactive bool) ([]model.Person, error) {
	people, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}

	return people, nil
}
