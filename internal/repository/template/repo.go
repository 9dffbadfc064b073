// Package template provides access to the singleton message_templates
// row. The row is seeded by the migrations, so reads normally succeed.
package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/licensure/licensure/internal/model"
)

var ErrTemplatesNotFound = errors.New("message templates not found")

// Repository provides methods to interact with the message_templates table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new template repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Get retrieves the singleton template set.
func (r *Repository) Get(ctx context.Context) (model.TemplateSet, error) {
	query := `
		SELECT responsible_subject, responsible_body,
		       stakeholder_subject, stakeholder_body, updated_at
		FROM message_templates
		WHERE id = 1;
	`

	var set model.TemplateSet
	err := r.db.Master.QueryRowContext(ctx, query).Scan(
		&set.ResponsibleSubject, &set.ResponsibleBody,
		&set.StakeholderSubject, &set.StakeholderBody, &set.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.TemplateSet{}, ErrTemplatesNotFound
		}
		return model.TemplateSet{}, fmt.Errorf("failed to get message templates: %w", err)
	}

	return set, nil
}

// Update rewrites the singleton template set and returns the stored row.
func (r *Repository) Update(ctx context.Context, set model.TemplateSet) (model.TemplateSet, error) {
	query := `
		UPDATE message_templates
		SET responsible_subject = $1,
		    responsible_body = $2,
		    stakeholder_subject = $3,
		    stakeholder_body = $4,
		    updated_at = NOW()
		WHERE id = 1
		RETURNING responsible_subject, responsible_body,
		          stakeholder_subject, stakeholder_body, updated_at;
	`

	var updated model.TemplateSet
	err := r.db.Master.QueryRowContext(
		ctx, query,
		set.ResponsibleSubject, set.ResponsibleBody,
		set.StakeholderSubject, set.StakeholderBody,
	).Scan(
		&updated.ResponsibleSubject, &updated.ResponsibleBody,
		&updated.StakeholderSubject, &updated.StakeholderBody, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.TemplateSet{}, ErrTemplatesNotFound
		}
		return model.TemplateSet{}, fmt.Errorf("failed to update message templates: %w", err)
	}

	return updated, nil
}
