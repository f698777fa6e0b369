package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"fleetdesk/config"
	"fleetdesk/internal/domain/service"
)

// reminderMailTemplate keeps the mail body self-contained so the binary does
// not depend on template files at runtime.
const reminderMailTemplate = `<html>
<body style="font-family: sans-serif; color: #1f2933;">
  <p>Bonjour {{.RecipientName}},</p>
  <p>Un rappel vous concerne&nbsp;:</p>
  <h2 style="margin: 8px 0;">{{.Title}}</h2>
  {{if .Body}}<p>{{.Body}}</p>{{end}}
  <p style="color: #7b8794; font-size: 12px;">Cet e-mail a été envoyé automatiquement, merci de ne pas y répondre.</p>
</body>
</html>`

type resendMailService struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	tmpl      *template.Template
}

// NewResendMailService creates the Resend-backed reminder mail sender.
func NewResendMailService(cfg *config.MailConfig) (service.MailService, error) {
	tmpl, err := template.New("reminder").Parse(reminderMailTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reminder mail template: %w", err)
	}

	return &resendMailService{
		client:    resend.NewClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		tmpl:      tmpl,
	}, nil
}

// SendReminderMail delivers a single reminder notification email.
func (s *resendMailService) SendReminderMail(ctx context.Context, toEmail, recipientName, title, body string) error {
	data := struct {
		RecipientName string
		Title         string
		Body          string
	}{
		RecipientName: recipientName,
		Title:         title,
		Body:          body,
	}

	var html bytes.Buffer
	if err := s.tmpl.Execute(&html, data); err != nil {
		return fmt.Errorf("failed to execute reminder mail template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Rappel : %s", title),
		Html:    html.String(),
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send reminder mail: %w", err)
	}

	return nil
}
