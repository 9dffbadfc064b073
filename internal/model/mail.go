package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MailStatusSent   = "SENT"
	MailStatusFailed = "FAILED"
)

// MailLog is an append-only record of one attempted notification send.
// Entries are never updated or deleted.
type MailLog struct {
	ID        uuid.UUID `json:"id"`
	LicenseID uuid.UUID `json:"license_id"`
	PersonID  uuid.UUID `json:"person_id"`
	Email     string    `json:"email"`
	MailType  string    `json:"mail_type"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    string    `json:"status"`
	SentAt    time.Time `json:"sent_at"`

	// Filled only by the joined list view.
	LicenseName string `json:"license_name,omitempty"`
	PersonName  string `json:"person_name,omitempty"`
}
