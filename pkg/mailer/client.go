// Package mailer provides an SMTP client for sending expiry reminders.
package mailer

import (
	"fmt"
	"time"

	"gopkg.in/mail.v2"
)

// Client represents an SMTP client bound to one sender account.
type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
	timeout  time.Duration
}

// NewClient creates a new mail Client. The timeout bounds each send; a
// timed-out send is reported as a failed delivery, not a fatal error.
func NewClient(smtpHost string, smtpPort int, username, password, from string, timeout time.Duration) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
		timeout:  timeout,
	}
}

// Send delivers one plain-text message to the given address.
func (c *Client) Send(to, subject, body string) error {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)

	message.SetBody("text/plain", body)

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)
	if c.timeout > 0 {
		dialer.Timeout = c.timeout
	}

	if err := dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	return nil
}
