package notification

import (
	"context"
	"fmt"

	"medibook/config"
	"medibook/models"

	"gopkg.in/gomail.v2"
)

// GomailMailer delivers emails over SMTP.
type GomailMailer struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewGomailMailer builds a Mailer from the SMTP configuration.
func NewGomailMailer() *GomailMailer {
	cfg := config.AppConfig
	return &GomailMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.MailFrom,
	}
}

// Send delivers one message. The context is honored before dialing; gomail
// itself does not support cancellation mid-send.
func (m *GomailMailer) Send(ctx context.Context, msg models.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := d.DialAndSend(mail); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}
	return nil
}
