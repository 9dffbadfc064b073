// Package maillog provides access to the append-only mail_logs table.
package maillog

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/licensure/licensure/internal/model"
)

// Repository provides methods to interact with the mail_logs table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new mail log repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Append records one attempted send. Entries are immutable.
func (r *Repository) Append(ctx context.Context, entry model.MailLog) error {
	query := `
		INSERT INTO mail_logs
			(license_id, person_id, email, mail_type, subject, body, status, sent_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8);
	`

	_, err := r.db.ExecContext(
		ctx, query,
		entry.LicenseID, entry.PersonID, entry.Email, entry.MailType,
		entry.Subject, entry.Body, entry.Status, entry.SentAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append mail log: %w", err)
	}

	return nil
}

// List retrieves the full log newest first, joined with license and
// person names for the dashboard view.
func (r *Repository) List(ctx context.Context) ([]model.MailLog, error) {
	query := `
		SELECT ml.id, ml.license_id, ml.person_id, ml.email, ml.mail_type,
		       ml.subject, ml.body, ml.status, ml.sent_at,
		       COALESCE(l.name, ''), COALESCE(p.name, '')
		FROM mail_logs ml
		LEFT JOIN licenses l ON l.id = ml.license_id
		LEFT JOIN people p ON p.id = ml.person_id
		ORDER BY ml.sent_at DESC, ml.id DESC;
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list mail logs: %w", err)
	}
	defer rows.Close()

	var logs []model.MailLog
	for rows.Next() {
		var entry model.MailLog
		if err := rows.Scan(
			&entry.ID, &entry.LicenseID, &entry.PersonID, &entry.Email,
			&entry.MailType, &entry.Subject, &entry.Body, &entry.Status,
			&entry.SentAt, &entry.LicenseName, &entry.PersonName,
		); err != nil {
			return nil, err
		}
		logs = append(logs, entry)
	}

	return logs, rows.Err()
}
