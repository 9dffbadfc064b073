package dto

// UpdateTemplatesRequest is the payload for PUT /api/message-templates.
// All four fields are required.
type UpdateTemplatesRequest struct {
	ResponsibleSubject string `json:"responsible_subject" validate:"required"`
	ResponsibleBody    string `json:"responsible_body" validate:"required"`
	StakeholderSubject string `json:"stakeholder_subject" validate:"required"`
	StakeholderBody    string `json:"stakeholder_body" validate:"required"`
}

// UpdateSMTPRequest is the payload for PUT /api/smtp-settings.
type UpdateSMTPRequest struct {
	ModulePassword string `json:"module_password" validate:"required"`
	SenderEmail    string `json:"sender_email" validate:"required,email"`
	SenderPassword string `json:"sender_password" validate:"required"`
}
