package mailer

import (
	"fmt"
	"regexp"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/sasaki-csngrp/myreno/config"
	"github.com/sasaki-csngrp/myreno/logger"
)

// Mailer sends transactional mail. Callers treat delivery as best-effort.
type Mailer interface {
	Send(to, subject, html string) error
}

type SendGridMailer struct {
	apiKey string
	from   string
	log    *logger.Logger
}

func NewSendGridMailer(log *logger.Logger) *SendGridMailer {
	return &SendGridMailer{
		apiKey: config.MustGetEnv("SENDGRID_API_KEY"),
		from:   config.MustGetEnv("EMAIL_FROM"),
		log:    log.With("component", "mailer"),
	}
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

func (m *SendGridMailer) Send(to, subject, html string) error {
	from := mail.NewEmail("", m.from)
	recipient := mail.NewEmail("", to)
	plain := htmlTagPattern.ReplaceAllString(html, "")
	message := mail.NewSingleEmail(from, subject, recipient, plain, html)

	resp, err := sendgrid.NewSendClient(m.apiKey).Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		m.log.Error("sendgrid rejected message", "status", resp.StatusCode, "body", resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}

	m.log.Info("email sent", "to", to, "subject", subject, "status", resp.StatusCode)
	return nil
}
