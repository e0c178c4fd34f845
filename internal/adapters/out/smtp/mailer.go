// Package smtp sends transactional mail to users over a plain SMTP relay.
package smtp

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer implements ports.Notifier over net/smtp with PLAIN auth.
// Every subject is prefixed with the product name.
type Mailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewMailer creates a mailer for the given relay.
// Host and port form the relay address; from is the envelope sender.
func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		addr: fmt.Sprintf("%s:%d", host, port),
		from: from,
		auth: smtp.PlainAuth("", username, password, host),
	}
}

// Send delivers one message. The context is checked before dialing;
// net/smtp itself does not support cancellation mid-send.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(m.from, to, subject, body)

	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg))
}

// buildMessage assembles the raw RFC 5322 message with CRLF line endings.
func buildMessage(from, to, subject, body string) string {
	return strings.Join([]string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: Wroom: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")
}
