package notify

import (
	"fmt"
	"regexp"
	"time"

	"github.com/licensure/licensure/internal/model"
)

var tokenRe = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// Render substitutes {{token}} placeholders in template with values.
// Tokens without a value render as an empty string, never as the
// literal placeholder.
func Render(template string, values map[string]string) string {
	return tokenRe.ReplaceAllStringFunc(template, func(match string) string {
		key := tokenRe.FindStringSubmatch(match)[1]
		return values[key]
	})
}

// Message is a rendered subject/body pair ready for the transport.
type Message struct {
	Subject string
	Body    string
}

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

// BuildMessage renders the subject and body for one recipient, picking
// the template class from the link's responsibility.
func BuildMessage(lic model.License, rec model.Recipient, daysLeft int, templates model.TemplateSet) Message {
	values := map[string]string{
		"person_name":  rec.Name,
		"person_email": rec.Email,
		"license_name": lic.Name,
		"provider":     lic.Provider,
		"expiry_date":  lic.ExpiryDate.Format(dateLayout),
		"issued_date":  lic.IssuedDate.Format(dateLayout),
		"start_date":   formatDate(lic.StartDate),
		"days_left":    fmt.Sprintf("%d", daysLeft),
		"role":         rec.Responsibility,
	}

	subject := templates.StakeholderSubject
	body := templates.StakeholderBody
	if rec.Responsibility == model.RoleResponsible {
		subject = templates.ResponsibleSubject
		body = templates.ResponsibleBody
	}

	return Message{
		Subject: Render(subject, values),
		Body:    Render(body, values),
	}
}
