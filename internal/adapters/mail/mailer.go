package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	portssvc "github.com/shopward/shopward_backend/internal/core/ports/services"
	"github.com/shopward/shopward_backend/internal/platform/config"
)

// SMTPMailer delivers account-recovery codes over SMTP.
type SMTPMailer struct {
	host     string
	port     int
	from     string
	password string
}

// NewSMTPMailer creates a mailer from the application config.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		password: cfg.SMTPPassword,
	}
}

var _ portssvc.MailSenderSvc = (*SMTPMailer)(nil)

// SendRecoveryCode mails the recovery code to the given address.
func (m *SMTPMailer) SendRecoveryCode(ctx context.Context, toEmail, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", toEmail)
	msg.SetHeader("Subject", "Account Recovery Code")
	msg.SetBody("text/plain", fmt.Sprintf("Your account recovery code is: %s", code))

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send recovery code mail: %w", err)
	}
	return nil
}
