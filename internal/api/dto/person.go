package dto

// CreatePersonRequest is the payload for POST /api/people.
type CreatePersonRequest struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required"`
	Department  string  `json:"department" validate:"required"`
	Role        string  `json:"role" validate:"required"`
	Designation *string `json:"designation"`
}

// UpdatePersonRequest is the payload for PUT /api/people/:id. Omitted
// fields keep their stored values.
type UpdatePersonRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	Department  *string `json:"department"`
	Role        *string `json:"role"`
	Designation *string `json:"designation"`
}
