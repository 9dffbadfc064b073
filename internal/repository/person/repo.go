// Package person provides access to the people table.
package person

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/licensure/licensure/internal/model"
)

var ErrPersonNotFound = errors.New("person not found")

const personColumns = `
	id, name, email, phone, department, role, designation, status,
	created_at, updated_at`

// Repository provides methods to interact with the people table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new person repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPerson(row rowScanner) (model.Person, error) {
	var p model.Person
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &p.Department, &p.Role,
		&p.Designation, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create inserts a new person and returns the stored row.
func (r *Repository) Create(ctx context.Context, p model.Person) (model.Person, error) {
	query := `
		INSERT INTO people (name, email, phone, department, role, designation)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING` + personColumns + `;
	`

	created, err := scanPerson(r.db.Master.QueryRowContext(
		ctx, query, p.Name, p.Email, p.Phone, p.Department, p.Role, p.Designation,
	))
	if err != nil {
		return model.Person{}, fmt.Errorf("failed to create person: %w", err)
	}

	return created, nil
}

// Update rewrites a person row and returns the stored result.
func (r *Repository) Update(ctx context.Context, p model.Person) (model.Person, error) {
	query := `
		UPDATE people
		SET name = $1,
		    email = $2,
		    phone = $3,
		    department = $4,
		    role = $5,
		    designation = $6,
		    status = $7,
		    updated_at = NOW()
		WHERE id = $8
		RETURNING` + personColumns + `;
	`

	updated, err := scanPerson(r.db.Master.QueryRowContext(
		ctx, query,
		p.Name, p.Email, p.Phone, p.Department, p.Role, p.Designation,
		p.Status, p.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Person{}, ErrPersonNotFound
		}
		return model.Person{}, fmt.Errorf("failed to update person: %w", err)
	}

	return updated, nil
}

// Delete removes a person; license links cascade.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM people WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrPersonNotFound
	}

	return nil
}

// PersonByID retrieves a single person row.
func (r *Repository) PersonByID(ctx context.Context, id uuid.UUID) (model.Person, error) {
	query := `SELECT` + personColumns + ` FROM people WHERE id = $1;`

	p, err := scanPerson(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Person{}, ErrPersonNotFound
		}
		return model.Person{}, fmt.Errorf("failed to get person: %w", err)
	}

	return p, nil
}

// PersonByEmail retrieves a person by email, case-insensitively.
func (r *Repository) PersonByEmail(ctx context.Context, email string) (model.Person, error) {
	query := `SELECT` + personColumns + ` FROM people WHERE LOWER(email) = LOWER($1) LIMIT 1;`

	p, err := scanPerson(r.db.Master.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Person{}, ErrPersonNotFound
		}
		return model.Person{}, fmt.Errorf("failed to get person by email: %w", err)
	}

	return p, nil
}

// List retrieves people newest first, hiding inactive rows unless asked.
func (r *Repository) List(ctx context.Context, includeInactive bool) ([]model.Person, error) {
	query := `SELECT` + personColumns + ` FROM people ORDER BY created_at DESC;`
	if !includeInactive {
		query = `SELECT` + personColumns + `
			FROM people
			WHERE status <> '` + model.PersonStatusInactive + `'
			ORDER BY created_at DESC;`
	}

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	defer rows.Close()

	var people []model.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}

	return people, rows.Err()
}

// LinkedToLicense retrieves every person linked to a license, tagged
// with the responsibility the link carries.
func (r *Repository) LinkedToLicense(ctx context.Context, licenseID uuid.UUID) ([]model.Recipient, error) {
	query := `
		SELECT p.id, p.name, p.email, p.phone, p.department, p.role,
		       p.designation, p.status, p.created_at, p.updated_at,
		       lp.responsibility
		FROM license_people lp
		JOIN people p ON p.id = lp.person_id
		WHERE lp.license_id = $1;
	`

	rows, err := r.db.QueryContext(ctx, query, licenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list license recipients: %w", err)
	}
	defer rows.Close()

	var recipients []model.Recipient
	for rows.Next() {
		var rec model.Recipient
		if err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Email, &rec.Phone, &rec.Department,
			&rec.Role, &rec.Designation, &rec.Status, &rec.CreatedAt,
			&rec.UpdatedAt, &rec.Responsibility,
		); err != nil {
			return nil, err
		}
		recipients = append(recipients, rec)
	}

	return recipients, rows.Err()
}
