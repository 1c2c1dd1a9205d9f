// Package contact delivers contact form submissions by email.
package contact

import (
	"context"
	"fmt"
	"net"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/pkg/errors"
)

// ErrNotConfigured is returned when no SMTP credentials are set.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Message is one contact form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Validate checks the submission before anything is sent.
func (m Message) Validate() (err error) {
	if strings.TrimSpace(m.Name) == "" {
		err = errors.New("name is required")
		return err
	}
	if _, parseErr := mail.ParseAddress(m.Email); parseErr != nil {
		err = errors.Errorf("invalid email address %q", m.Email)
		return err
	}
	if strings.TrimSpace(m.Body) == "" {
		err = errors.New("message is required")
		return err
	}
	if strings.ContainsAny(m.Name+m.Email, "\r\n") {
		err = errors.New("header fields must be a single line")
		return err
	}
	return err
}

// Mailer sends contact messages.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

// SendFunc sends a raw message, with the signature of smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer relays messages through an SMTP server with PLAIN auth.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	To   string
	// SendMail defaults to smtp.SendMail.
	SendMail SendFunc
}

// Compose renders the message as an RFC 5322 email addressed to the owner.
func (s *SMTPMailer) Compose(m Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", m.Name)
	body := fmt.Sprintf(`New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Body)

	return []byte("To: " + s.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.User + "\r\n" +
		"Reply-To: " + m.Email + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		strings.ReplaceAll(body, "\n", "\r\n"))
}

// Send validates m and relays it. The context is checked before dialing;
// net/smtp itself cannot be cancelled.
func (s *SMTPMailer) Send(ctx context.Context, m Message) (err error) {
	if s.User == "" || s.Pass == "" {
		return ErrNotConfigured
	}
	err = m.Validate()
	if err != nil {
		return err
	}
	err = ctx.Err()
	if err != nil {
		return err
	}

	to := s.To
	if to == "" {
		to = s.User
	}
	send := s.SendMail
	if send == nil {
		send = smtp.SendMail
	}

	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	err = send(net.JoinHostPort(s.Host, s.Port), auth, s.User, []string{to}, s.Compose(m))
	if err != nil {
		err = errors.Wrap(err, "failed to send contact email")
		return err
	}
	return err
}
