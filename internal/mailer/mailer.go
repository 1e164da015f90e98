// Package mailer delivers analysis results by e-mail: an HTML summary of
// the ranking with the full result CSV attached.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/wneessen/go-mail"
)

// ErrNotConfigured indicates SMTP credentials are missing, so no delivery
// can be attempted.
var ErrNotConfigured = errors.New("mailer: smtp sender or password not configured")

var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidAddress reports whether s looks like a deliverable e-mail address.
func ValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// Message is one outgoing result notification.
type Message struct {
	To             string
	Subject        string
	HTMLBody       string
	AttachmentName string
	AttachmentData []byte
}

// Client sends result notifications. Delivery failures never fail the
// analysis that produced the result; callers report them instead.
type Client interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPClient sends mail over SMTP with mandatory STARTTLS.
type SMTPClient struct {
	host     string
	port     int
	sender   string
	password string
}

func NewSMTPClient(host string, port int, sender, password string) *SMTPClient {
	return &SMTPClient{host: host, port: port, sender: sender, password: password}
}

func (c *SMTPClient) Send(ctx context.Context, msg Message) error {
	if c.sender == "" || c.password == "" {
		return ErrNotConfigured
	}

	m := mail.NewMsg()
	if err := m.From(c.sender); err != nil {
		return fmt.Errorf("mailer: sender address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("mailer: recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
	if msg.AttachmentName != "" {
		if err := m.AttachReader(msg.AttachmentName, bytes.NewReader(msg.AttachmentData)); err != nil {
			return fmt.Errorf("mailer: attach result: %w", err)
		}
	}

	client, err := c.smtpClient()
	if err != nil {
		return fmt.Errorf("mailer: smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mailer: send: %w", err)
	}
	return nil
}

func (c *SMTPClient) smtpClient() (*mail.Client, error) {
	return mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.sender),
		mail.WithPassword(c.password),
		// PLAIN credentials must never travel over cleartext.
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
}
