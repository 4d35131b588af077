package notify

import (
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer sends plain-text mail through a single SMTP endpoint.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

var _ Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) Send(recipient, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{recipient}, []byte(msg.String()))
}
