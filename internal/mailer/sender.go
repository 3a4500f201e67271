package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/config"
)

// Sender delivers one message. The SMTP implementation is the production
// one; tests swap in a fake.
type Sender interface {
	Send(to []string, subject, body string) error
}

type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to []string, subject, body string) error {
	if s.cfg.Host == "" {
		return errors.New("smtp host not configured")
	}
	if len(to) == 0 {
		return errors.New("no recipients")
	}

	var msg strings.Builder
	msg.WriteString("From: " + s.cfg.From + "\r\n")
	msg.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	return smtp.SendMail(addr, auth, s.cfg.From, to, []byte(msg.String()))
}

var _ Sender = (*SMTPSender)(nil)
