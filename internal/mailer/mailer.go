// Package mailer sends transactional email (password-reset codes and
// task reminders) over SMTP.  Delivery is best effort everywhere in the
// service: callers log a failure and move on, they never surface it to
// the HTTP client.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/todotask/backend/internal/config"
)

// Mailer holds SMTP settings injected once at startup.  When no password
// is configured the mailer runs in disabled mode and only logs what it
// would have sent, which keeps local development working without real
// credentials.
type Mailer struct {
	host string
	port string
	from string
	pass string
}

func New(cfg config.Config) *Mailer {
	return &Mailer{host: cfg.SMTPHost, port: cfg.SMTPPort, from: cfg.SMTPFrom, pass: cfg.SMTPPass}
}

// Enabled reports whether real delivery is configured.
func (m *Mailer) Enabled() bool { return m.from != "" && m.pass != "" }

// Send delivers a plain-text message.  smtp.SendMail negotiates STARTTLS
// when the server offers it, which covers the usual port-587 setup.
func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		log.Printf("mailer disabled: would send %q to %s", subject, to)
		return nil
	}
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.from, to, subject, body))
	auth := smtp.PlainAuth("", m.from, m.pass, m.host)
	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, msg)
}

// SendOTP mails a password-reset code with the standard wording.
func (m *Mailer) SendOTP(to, code string) error {
	body := fmt.Sprintf("Your password reset OTP is: %s\nValid for 10 minutes.", code)
	return m.Send(to, "Password Reset OTP", body)
}
