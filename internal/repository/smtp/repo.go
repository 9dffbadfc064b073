// Package smtp provides access to the singleton smtp_settings row.
package smtp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/licensure/licensure/internal/model"
)

var ErrSettingsNotFound = errors.New("smtp settings not found")

// Repository provides methods to interact with the smtp_settings table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new SMTP settings repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Get retrieves the singleton settings row.
func (r *Repository) Get(ctx context.Context) (model.SMTPSettings, error) {
	query := `
		SELECT COALESCE(sender_email, ''), COALESCE(sender_password_enc, ''), updated_at
		FROM smtp_settings
		WHERE id = 1;
	`

	var s model.SMTPSettings
	err := r.db.Master.QueryRowContext(ctx, query).Scan(
		&s.SenderEmail, &s.SenderPasswordEnc, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.SMTPSettings{}, ErrSettingsNotFound
		}
		return model.SMTPSettings{}, fmt.Errorf("failed to get smtp settings: %w", err)
	}

	return s, nil
}

// Save upserts the singleton settings row.
func (r *Repository) Save(ctx context.Context, senderEmail, senderPasswordEnc string) error {
	query := `
		INSERT INTO smtp_settings (id, sender_email, sender_password_enc, updated_at)
		VALUES (1, $1, $2, NOW())
		ON CONFLICT (id) DO UPDATE
		SET sender_email = EXCLUDED.sender_email,
		    sender_password_enc = EXCLUDED.sender_password_enc,
		    updated_at = NOW();
	`

	if _, err := r.db.ExecContext(ctx, query,
		nullable(senderEmail), nullable(senderPasswordEnc),
	); err != nil {
		return fmt.Errorf("failed to save smtp settings: %w", err)
	}

	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
