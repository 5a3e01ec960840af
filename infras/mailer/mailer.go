package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/rs/zerolog/log"

	"royalpalace/config"
	"royalpalace/infras/otel"
	"royalpalace/shared/constant"
)

const (
	otelAttrRecipient = "recipient"
	otelAttrSubject   = "subject"
)

// Mailer delivers guest-facing emails. Delivery is best effort end to end;
// callers must never fail a booking because an email bounced.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type smtpMailer struct {
	config *config.Config
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	if !cfg.Mail.Enable {
		log.Warn().Msg("Mail delivery disabled, outgoing emails will be dropped")
	}

	return &smtpMailer{
		config: cfg,
		otel:   otl,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: to,
		otelAttrSubject:   subject,
	})

	if !m.config.Mail.Enable {
		log.Info().Str("to", to).Str("subject", subject).Msg("Mail delivery disabled, dropping email")

		return nil
	}

	message := m.buildMessage(to, subject, htmlBody)
	addr := net.JoinHostPort(m.config.Mail.Host, m.config.Mail.Port)

	var auth smtp.Auth
	if m.config.Mail.Username != "" {
		auth = smtp.PlainAuth("", m.config.Mail.Username, m.config.Mail.Password, m.config.Mail.Host)
	}

	err = smtp.SendMail(addr, auth, m.config.Mail.From, []string{to}, message)
	if err != nil {
		log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("Failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("Email sent")

	return nil
}

func (m *smtpMailer) buildMessage(to, subject, htmlBody string) []byte {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("From: %s <%s>\r\n", m.config.Hotel.Name, m.config.Mail.From))
	builder.WriteString(fmt.Sprintf("To: %s\r\n", to))
	builder.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	builder.WriteString("MIME-Version: 1.0\r\n")
	builder.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	builder.WriteString("\r\n")
	builder.WriteString(htmlBody)

	return []byte(builder.String())
}
