package model

import "time"

// TemplateSet is the singleton subject/body pair per recipient class.
// Bodies and subjects may contain {{token}} placeholders.
type TemplateSet struct {
	ResponsibleSubject string    `json:"responsible_subject"`
	ResponsibleBody    string    `json:"responsible_body"`
	StakeholderSubject string    `json:"stakeholder_subject"`
	StakeholderBody    string    `json:"stakeholder_body"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultTemplateSet returns the compiled-in templates used to seed the
// template store and as a fallback when the store cannot be read.
func DefaultTemplateSet() TemplateSet {
	return TemplateSet{
		ResponsibleSubject: "ACTION REQUIRED: {{license_name}} expires in {{days_left}} days",
		ResponsibleBody: `Dear {{person_name}},

You are the PRIMARY RESPONSIBLE for the license "{{license_name}}".

Expiry Date: {{expiry_date}}
Days Remaining: {{days_left}}

Please initiate renewal immediately.

-- License Management System`,
		StakeholderSubject: "INFO: {{license_name}} expiry update ({{days_left}} days left)",
		StakeholderBody: `Dear {{person_name}},

This is an informational update for the license "{{license_name}}".

Expiry Date: {{expiry_date}}
Days Remaining: {{days_left}}

No action required from you.

-- License Management System`,
	}
}
