package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hospitality/config"
	"hospitality/infras/otel"
	"hospitality/shared/constant"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	otelAttrRecipient = "mail.to"
	otelAttrSubject   = "mail.subject"
)

// seam for tests
var sendMail = smtp.SendMail

// Mailer delivers transactional email. Delivery is best-effort by contract:
// callers must treat a returned error as a soft warning, never as a reason
// to fail the operation that triggered the message.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

type mailerImpl struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Mailer {
	return &mailerImpl{
		cfg:  cfg,
		otel: otel,
	}
}

func (m *mailerImpl) Send(ctx context.Context, to []string, subject, htmlBody string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: strings.Join(to, ","),
		otelAttrSubject:   subject,
	})

	if !m.cfg.Mail.Enable {
		log.Warn().Str("subject", subject).Msg("mail delivery disabled, skipping send")

		return nil
	}

	from := m.cfg.Mail.From
	if from == "" {
		from = m.cfg.Mail.Username
	}

	headers := []string{
		"From: " + from,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	body := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	addr := net.JoinHostPort(m.cfg.Mail.Host, m.cfg.Mail.Port)
	auth := smtp.PlainAuth("", m.cfg.Mail.Username, m.cfg.Mail.Password, m.cfg.Mail.Host)

	if err = sendMail(addr, auth, from, to, []byte(body)); err != nil {
		log.Error().Err(err).Str("subject", subject).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
