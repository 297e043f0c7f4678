// Package delivery sends generated reports to the requesting user by
// email. Sending is fire-and-once: a failed send is surfaced as a
// *DeliveryError and never retried.
package delivery

import (
	"bytes"
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"
)

// Config holds SMTP server configuration.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Message represents a single outgoing email with one attachment.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

// SMTPSender delivers messages over SMTP.
type SMTPSender struct {
	client *mail.Client
	from   string
}

// NewSMTPSender creates a sender for the given SMTP configuration.
func NewSMTPSender(cfg Config) (*SMTPSender, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, &DeliveryError{Message: "failed to configure SMTP client", Cause: err}
	}
	return &SMTPSender{client: client, from: cfg.From}, nil
}

// Send delivers the message, honoring ctx for cancellation and deadline.
// The attachment is sent from memory and never written to disk.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return &DeliveryError{Message: "invalid sender address", Cause: err}
	}
	if err := m.To(msg.To); err != nil {
		return &DeliveryError{Message: fmt.Sprintf("invalid recipient address %q", msg.To), Cause: err}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	if msg.AttachmentName != "" {
		if err := m.AttachReader(msg.AttachmentName, bytes.NewReader(msg.Attachment),
			mail.WithFileContentType("application/pdf")); err != nil {
			return &DeliveryError{Message: "failed to attach document", Cause: err}
		}
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return &DeliveryError{Message: "failed to send email", Cause: err}
	}
	return nil
}
