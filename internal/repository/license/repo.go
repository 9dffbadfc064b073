// Package license provides access to the licenses and license_people
// tables.
package license

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/licensure/licensure/internal/model"
)

var ErrLicenseNotFound = errors.New("license not found")

const licenseColumns = `
	id, name, provider, cost, issued_date, start_date, expiry_date,
	status, description, notify_six_month, notify_monthly,
	notify_daily_last_30, six_month_sent_at, created_at, updated_at`

// Repository provides methods to interact with the licenses table and
// its person links.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new license repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLicense(row rowScanner) (model.License, error) {
	var l model.License
	err := row.Scan(
		&l.ID, &l.Name, &l.Provider, &l.Cost, &l.IssuedDate, &l.StartDate,
		&l.ExpiryDate, &l.Status, &l.Description, &l.NotifySixMonth,
		&l.NotifyMonthly, &l.NotifyDailyLast30, &l.SixMonthSentAt,
		&l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create inserts a license together with its person links in one
// transaction and returns the stored row.
func (r *Repository) Create(
	ctx context.Context,
	lic model.License,
	responsibleIDs, stakeholderIDs []uuid.UUID,
) (model.License, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.License{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO licenses (
			name, provider, cost, issued_date, start_date, expiry_date,
			status, description, notify_six_month, notify_monthly,
			notify_daily_last_30
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING` + licenseColumns + `;
	`

	created, err := scanLicense(tx.QueryRowContext(
		ctx, query,
		lic.Name, lic.Provider, lic.Cost, lic.IssuedDate, lic.StartDate,
		lic.ExpiryDate, lic.Status, lic.Description, lic.NotifySixMonth,
		lic.NotifyMonthly, lic.NotifyDailyLast30,
	))
	if err != nil {
		return model.License{}, fmt.Errorf("failed to create license: %w", err)
	}

	if err := insertLinks(ctx, tx, created.ID, responsibleIDs, model.RoleResponsible); err != nil {
		return model.License{}, err
	}
	if err := insertLinks(ctx, tx, created.ID, stakeholderIDs, model.RoleStakeholder); err != nil {
		return model.License{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.License{}, fmt.Errorf("commit: %w", err)
	}

	created.ResponsibleIDs = responsibleIDs
	created.StakeholderIDs = stakeholderIDs

	return created, nil
}

// Update rewrites the license row and replaces its person links. When
// clearSixMonthSent is true the one-shot marker is reset, re-arming the
// six-month reminder.
func (r *Repository) Update(
	ctx context.Context,
	lic model.License,
	responsibleIDs, stakeholderIDs []uuid.UUID,
	clearSixMonthSent bool,
) (model.License, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return model.License{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		UPDATE licenses
		SET name = $1,
		    provider = $2,
		    cost = $3,
		    issued_date = $4,
		    start_date = $5,
		    expiry_date = $6,
		    status = $7,
		    description = $8,
		    notify_six_month = $9,
		    notify_monthly = $10,
		    notify_daily_last_30 = $11,
		    six_month_sent_at = CASE WHEN $12 THEN NULL ELSE six_month_sent_at END,
		    updated_at = NOW()
		WHERE id = $13
		RETURNING` + licenseColumns + `;
	`

	updated, err := scanLicense(tx.QueryRowContext(
		ctx, query,
		lic.Name, lic.Provider, lic.Cost, lic.IssuedDate, lic.StartDate,
		lic.ExpiryDate, lic.Status, lic.Description, lic.NotifySixMonth,
		lic.NotifyMonthly, lic.NotifyDailyLast30, clearSixMonthSent, lic.ID,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.License{}, ErrLicenseNotFound
		}
		return model.License{}, fmt.Errorf("failed to update license: %w", err)
	}

	if _, err := tx.ExecContext(
		ctx, `DELETE FROM license_people WHERE license_id = $1;`, lic.ID,
	); err != nil {
		return model.License{}, fmt.Errorf("failed to clear license links: %w", err)
	}

	if err := insertLinks(ctx, tx, lic.ID, responsibleIDs, model.RoleResponsible); err != nil {
		return model.License{}, err
	}
	if err := insertLinks(ctx, tx, lic.ID, stakeholderIDs, model.RoleStakeholder); err != nil {
		return model.License{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.License{}, fmt.Errorf("commit: %w", err)
	}

	updated.ResponsibleIDs = responsibleIDs
	updated.StakeholderIDs = stakeholderIDs

	return updated, nil
}

// insertLinks records link rows for one responsibility. A person holds
// at most one link per license; when the same person appears in both
// sets the responsible link is inserted first and wins.
func insertLinks(ctx context.Context, tx *sql.Tx, licenseID uuid.UUID, personIDs []uuid.UUID, responsibility string) error {
	for _, pid := range personIDs {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO license_people (license_id, person_id, responsibility)
			 VALUES ($1,$2,$3)
			 ON CONFLICT (license_id, person_id) DO NOTHING;`,
			licenseID, pid, responsibility,
		); err != nil {
			return fmt.Errorf("failed to link person %s: %w", pid, err)
		}
	}
	return nil
}

// Delete removes a license; its person links cascade.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM licenses WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("failed to delete license: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrLicenseNotFound
	}

	return nil
}

// LicenseByID retrieves a single license row.
func (r *Repository) LicenseByID(ctx context.Context, id uuid.UUID) (model.License, error) {
	query := `SELECT` + licenseColumns + ` FROM licenses WHERE id = $1;`

	lic, err := scanLicense(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.License{}, ErrLicenseNotFound
		}
		return model.License{}, fmt.Errorf("failed to get license: %w", err)
	}

	return lic, nil
}

// List retrieves all licenses ordered by expiry date, with their
// responsible and stakeholder id sets attached.
func (r *Repository) List(ctx context.Context) ([]model.License, error) {
	query := `SELECT` + licenseColumns + ` FROM licenses ORDER BY expiry_date ASC;`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list licenses: %w", err)
	}
	defer rows.Close()

	var licenses []model.License
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, err
		}
		licenses = append(licenses, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachLinks(ctx, licenses); err != nil {
		return nil, err
	}

	return licenses, nil
}

func (r *Repository) attachLinks(ctx context.Context, licenses []model.License) error {
	if len(licenses) == 0 {
		return nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT license_id, person_id, responsibility FROM license_people;`)
	if err != nil {
		return fmt.Errorf("failed to list license links: %w", err)
	}
	defer rows.Close()

	responsible := make(map[uuid.UUID][]uuid.UUID)
	stakeholders := make(map[uuid.UUID][]uuid.UUID)

	for rows.Next() {
		var licenseID, personID uuid.UUID
		var responsibility string
		if err := rows.Scan(&licenseID, &personID, &responsibility); err != nil {
			return err
		}

		if responsibility == model.RoleResponsible {
			responsible[licenseID] = append(responsible[licenseID], personID)
		} else {
			stakeholders[licenseID] = append(stakeholders[licenseID], personID)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range licenses {
		licenses[i].ResponsibleIDs = responsible[licenses[i].ID]
		licenses[i].StakeholderIDs = stakeholders[licenses[i].ID]
	}

	return nil
}

// ListActive retrieves all licenses the daily scan considers.
func (r *Repository) ListActive(ctx context.Context) ([]model.License, error) {
	query := `SELECT` + licenseColumns + ` FROM licenses WHERE status = $1;`

	rows, err := r.db.QueryContext(ctx, query, model.LicenseStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active licenses: %w", err)
	}
	defer rows.Close()

	var licenses []model.License
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, err
		}
		licenses = append(licenses, l)
	}

	return licenses, rows.Err()
}

// ClaimSixMonthSent marks the six-month one-shot as sent, but only when
// it is still unclaimed. The conditional write is what prevents two
// replicas from double-sending the reminder.
func (r *Repository) ClaimSixMonthSent(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE licenses
		SET six_month_sent_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND six_month_sent_at IS NULL;
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to claim six-month send: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

// ReleaseSixMonthSent clears a claim after a failed dispatch so the
// next scan can retry the one-shot.
func (r *Repository) ReleaseSixMonthSent(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE licenses
		SET six_month_sent_at = NULL, updated_at = NOW()
		WHERE id = $1;
	`, id)
	if err != nil {
		return fmt.Errorf("failed to release six-month send: %w", err)
	}

	return nil
}
