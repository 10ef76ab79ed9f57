package mail

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/mediflowhq/mediflow/internal/config"
	domain "github.com/mediflowhq/mediflow/internal/domain/booking"
)

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg *config.Config) domain.MailSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUsername,
			cfg.SMTPPassword,
		),
		from: cfg.SMTPFrom,
	}
}

// Send delivers one message over a fresh SMTP session. DialAndSend
// connects, sends and closes per call; there is no connection reuse.
// gomail carries no context support, so ctx is not propagated into the
// dial itself.
func (s *SMTPSender) Send(_ context.Context, msg domain.Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	if msg.AttachmentPath != "" {
		m.Attach(msg.AttachmentPath)
	}

	return s.dialer.DialAndSend(m)
}
