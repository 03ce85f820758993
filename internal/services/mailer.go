package services

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/naismart/naismart-backend/internal/config"
)

// Mailer sends transactional email. Delivery is best-effort everywhere in
// the workflow: a failed send is logged, never surfaced to the user.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail through the configured SMTP server
type SMTPMailer struct {
	dialer *gomail.Dialer
	sender string
}

// NewSMTPMailer creates a mailer from the mail-server config
func NewSMTPMailer(cfg config.App) (*SMTPMailer, error) {
	if cfg.MailServer == "" {
		return nil, fmt.Errorf("missing mail server in environment variables")
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.MailServer, cfg.MailPort, cfg.MailUsername, cfg.MailPassword),
		sender: cfg.MailSender,
	}, nil
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		log.Printf("❌ Failed to send email to %s: %v", to, err)
		return err
	}

	log.Printf("✅ Email sent to %s: %s", to, subject)
	return nil
}

// LogMailer is a sink used when no mail server is configured
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Printf("[mail] to=%s subject=%q", to, subject)
	return nil
}
