package dto

import "github.com/google/uuid"

// CreateLicenseRequest is the payload for POST /api/licenses. Dates use
// the 2006-01-02 layout.
type CreateLicenseRequest struct {
	Name              string      `json:"name" validate:"required"`
	Provider          string      `json:"provider" validate:"required"`
	Cost              float64     `json:"cost" validate:"gte=0"`
	IssuedDate        string      `json:"issued_date" validate:"required,datetime=2006-01-02"`
	StartDate         *string     `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate        string      `json:"expiry_date" validate:"required,datetime=2006-01-02"`
	Status            string      `json:"status" validate:"omitempty,oneof=ACTIVE RETIRED"`
	Description       *string     `json:"description"`
	NotifySixMonth    bool        `json:"notify_six_month"`
	NotifyMonthly     bool        `json:"notify_monthly"`
	NotifyDailyLast30 bool        `json:"notify_daily_last_30"`
	ResponsibleIDs    []uuid.UUID `json:"responsibleIds"`
	StakeholderIDs    []uuid.UUID `json:"stakeholderIds"`
}

// UpdateLicenseRequest is the payload for PUT /api/licenses/:id.
// Omitted fields keep their stored values; person links are replaced.
type UpdateLicenseRequest struct {
	Name              *string     `json:"name"`
	Provider          *string     `json:"provider"`
	Cost              *float64    `json:"cost" validate:"omitempty,gte=0"`
	IssuedDate        *string     `json:"issued_date" validate:"omitempty,datetime=2006-01-02"`
	StartDate         *string     `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate        *string     `json:"expiry_date" validate:"omitempty,datetime=2006-01-02"`
	Status            *string     `json:"status" validate:"omitempty,oneof=ACTIVE RETIRED"`
	Description       *string     `json:"description"`
	NotifySixMonth    *bool       `json:"notify_six_month"`
	NotifyMonthly     *bool       `json:"notify_monthly"`
	NotifyDailyLast30 *bool       `json:"notify_daily_last_30"`
	ResponsibleIDs    []uuid.UUID `json:"responsibleIds"`
	StakeholderIDs    []uuid.UUID `json:"stakeholderIds"`
}
