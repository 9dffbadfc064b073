package model

import "time"

// SMTPSettings is the singleton row holding the outbound mail sender.
// The password is stored encrypted and never leaves the service layer in
// plain form.
type SMTPSettings struct {
	SenderEmail       string
	SenderPasswordEnc string
	UpdatedAt         time.Time
}

// SMTPSettingsView is what the settings API exposes: the address and
// whether a password is stored, never the password itself.
type SMTPSettingsView struct {
	SenderEmail string     `json:"sender_email"`
	HasPassword bool       `json:"has_password"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
