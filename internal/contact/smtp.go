package contact

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPConfig configures delivery through a mail relay.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	To       string
}

// Configured reports whether credentials and a recipient are present.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.User != "" && c.Password != "" && c.To != ""
}

// SMTP sends payloads as plain-text mail with Reply-To set to the visitor.
type SMTP struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTP builds a sender for the given relay.
func NewSMTP(cfg SMTPConfig) *SMTP {
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTP{cfg: cfg, sendMail: smtp.SendMail}
}

// Send delivers the payload. net/smtp has no context support, so ctx is only
// checked before dialing.
func (s *SMTP) Send(ctx context.Context, p Payload) (Receipt, error) {
	if !s.cfg.Configured() {
		return Receipt{}, ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)

	if err := s.sendMail(addr, auth, s.cfg.User, []string{s.cfg.To}, s.message(p)); err != nil {
		return Receipt{}, fmt.Errorf("sending mail via %s: %w", addr, err)
	}
	return Receipt{Text: "OK"}, nil
}

func (s *SMTP) message(p Payload) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, p.FromName, p.FromEmail, p.Message)

	var b strings.Builder
	b.WriteString("To: " + s.cfg.To + "\r\n")
	b.WriteString("Subject: " + headerSafe("Portfolio Contact: "+p.FromName) + "\r\n")
	b.WriteString("From: " + s.cfg.User + "\r\n")
	b.WriteString("Reply-To: " + headerSafe(p.FromEmail) + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}

// headerSafe strips line breaks so visitor input cannot inject headers.
func headerSafe(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
