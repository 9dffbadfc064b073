package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleResponsible = "RESPONSIBLE"
	RoleStakeholder = "STAKEHOLDER"

	PersonStatusActive   = "ACTIVE"
	PersonStatusInactive = "INACTIVE"
)

// Person is a contact that can be linked to licenses as a responsible
// owner or a stakeholder.
type Person struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Department  string    `json:"department"`
	Role        string    `json:"role"`
	Designation *string   `json:"designation"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Recipient is a person linked to a concrete license, tagged with the
// responsibility the link carries for that license.
type Recipient struct {
	Person
	Responsibility string `json:"responsibility"`
}
