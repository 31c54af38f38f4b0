// Package smtp delivers inquiry emails over plain SMTP with STARTTLS.
// The stdlib client is used directly; failures surface as ContactResults.
package smtp

import (
	"context"
	"fmt"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"housing_finder/internal/adapters/observability"
	"housing_finder/internal/domain"
)

type Mailer struct {
	host string
	port int
	user string
	pass string
}

// New builds a mailer. Empty credentials are allowed: sends then report a
// not-configured result.
func New(host string, port int, user, pass string) *Mailer {
	if port == 0 {
		port = 587
	}
	return &Mailer{host: host, port: port, user: user, pass: pass}
}

func (m *Mailer) configured() bool {
	return m.host != "" && m.user != "" && m.pass != ""
}

// Send delivers one email. A single attempt, no retry.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) domain.ContactResult {
	if !m.configured() {
		return domain.ContactResult{
			Success: false,
			Error:   "smtp credentials not configured; set SMTP_HOST, SMTP_USER, SMTP_PASSWORD",
		}
	}
	if err := ctx.Err(); err != nil {
		return domain.ContactResult{Success: false, Error: err.Error()}
	}

	msg := buildMessage(m.user, to, subject, body)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)

	start := time.Now()
	err := smtp.SendMail(addr, auth, m.user, []string{to}, msg)
	status := 0
	if err == nil {
		status = 250
	}
	observability.ObserveTransport("smtp", "send", status, time.Since(start))

	if err != nil {
		return domain.ContactResult{Success: false, Error: "send email: " + err.Error()}
	}
	return domain.ContactResult{Success: true}
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
