// Package mail delivers plain-text email through SMTP or Amazon SES. Both
// senders implement ports.Mailer.
package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"visadesk/internal/core/ports"
)

var ErrNoRecipients = errors.New("mail: message has no recipients")

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	cfg  SMTPConfig
	send sendFunc
	now  func() time.Time
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail, now: time.Now}
}

func (m *SMTPMailer) Send(ctx context.Context, msg ports.Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mail: context done before sending: %w", err)
	}

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))
	body := buildMessage(m.cfg.From, msg, m.now())

	// net/smtp takes no context; a hung server is abandoned when ctx ends.
	done := make(chan error, 1)
	go func() {
		done <- m.send(addr, auth, m.cfg.From, msg.To, body)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mail: smtp send via %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mail: smtp send via %s abandoned: %w", addr, ctx.Err())
	}
}

func buildMessage(from string, msg ports.Message, date time.Time) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", date.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))

	return []byte(b.String())
}

// sanitizeHeader keeps error text that ends up in a subject from injecting
// extra headers.
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}
