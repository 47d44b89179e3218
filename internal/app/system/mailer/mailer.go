// internal/app/system/mailer/mailer.go
package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Config holds SMTP settings for the outbound mailer.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// Email represents an outbound message with optional HTML alternative.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers email. Implemented by Mailer; tests substitute a fake.
type Sender interface {
	Send(email Email) error
}

// Mailer sends email over SMTP via gomail.
type Mailer struct {
	cfg    Config
	dialer *gomail.Dialer
	logger *zap.Logger
}

// New creates a Mailer with the given SMTP configuration.
func New(cfg Config, logger *zap.Logger) (*Mailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("mailer: missing SMTP host")
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("mailer: missing SMTP port")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("mailer: missing from address")
	}
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		logger: logger,
	}, nil
}

// Send delivers a single email. The From header comes from the Mailer's
// configuration, not from the Email.
func (m *Mailer) Send(email Email) error {
	if email.To == "" {
		return fmt.Errorf("mailer: no recipient")
	}

	msg := gomail.NewMessage()
	if m.cfg.FromName != "" {
		msg.SetAddressHeader("From", m.cfg.From, m.cfg.FromName)
	} else {
		msg.SetHeader("From", m.cfg.From)
	}
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		msg.SetBody("text/html", email.HTMLBody)
		if email.TextBody != "" {
			msg.AddAlternative("text/plain", email.TextBody)
		}
	} else {
		msg.SetBody("text/plain", email.TextBody)
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Warn("email send failed", zap.String("to", email.To), zap.Error(err))
		return err
	}
	return nil
}
