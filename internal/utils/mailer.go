package utils

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// Mailer sends plain notification mail over SMTP. A zero-valued Mailer (no
// host) is disabled and drops messages silently, so local setups need no SMTP
// server.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailer builds a Mailer from SMTP settings. An empty host disables sending.
func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Enabled reports whether the mailer has an SMTP host configured.
func (m *Mailer) Enabled() bool {
	return m != nil && m.host != ""
}

// Send delivers a single plain-text message.
func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
