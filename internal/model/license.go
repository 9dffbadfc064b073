package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	LicenseStatusActive  = "ACTIVE"
	LicenseStatusRetired = "RETIRED"
)

// License represents a tracked software license together with its
// expiry-notification configuration and one-shot state.
type License struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Provider    string     `json:"provider"`
	Cost        float64    `json:"cost"`
	IssuedDate  time.Time  `json:"issued_date"`
	StartDate   *time.Time `json:"start_date"`
	ExpiryDate  time.Time  `json:"expiry_date"`
	Status      string     `json:"status"`
	Description *string    `json:"description"`

	NotifySixMonth    bool `json:"notify_six_month"`
	NotifyMonthly     bool `json:"notify_monthly"`
	NotifyDailyLast30 bool `json:"notify_daily_last_30"`

	// SixMonthSentAt is set once the one-time six-month reminder has been
	// dispatched. It is cleared only when notify_six_month transitions
	// from disabled to enabled.
	SixMonthSentAt *time.Time `json:"six_month_sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ResponsibleIDs []uuid.UUID `json:"responsibleIds"`
	StakeholderIDs []uuid.UUID `json:"stakeholderIds"`
}

// NotifyEnabled reports whether any of the three notification rules is
// switched on for the license.
func (l License) NotifyEnabled() bool {
	return l.NotifySixMonth || l.NotifyMonthly || l.NotifyDailyLast30
}
