package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/reviewhub/reviewhub-backend/internal/domain/ports"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/config"
)

// SMTPMailer implementa ports.Mailer sobre SMTP
type SMTPMailer struct {
	cfg    config.SMTPConfig
	from   string
	logger ports.Logger
}

// NewSMTPMailer cria um novo SMTPMailer
func NewSMTPMailer(cfg config.SMTPConfig, from string, logger ports.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, from: from, logger: logger}
}

// Send envia um email de texto simples
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)

	var err error
	if m.cfg.UseTLS {
		tlsConfig := &tls.Config{
			ServerName: m.cfg.Host,
			MinVersion: tls.VersionTLS12,
		}
		// 465 = SMTPS; 587 = STARTTLS
		if m.cfg.Port == 465 {
			err = e.SendWithTLS(addr, auth, tlsConfig)
		} else {
			err = e.SendWithStartTLS(addr, auth, tlsConfig)
		}
	} else {
		err = e.Send(addr, auth)
	}

	if err != nil {
		m.logger.Error("failed to send email", "to", to, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("email sent", "to", to, "subject", subject)
	return nil
}
