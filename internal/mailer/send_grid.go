package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/phuchoang/InteriorHub/internal/util"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

type SendGridMailer struct {
	fromEmail string
	client    *sendgrid.Client
	isSandBox bool
	logger    *zap.SugaredLogger
}

func NewSendgrid(apiKey string, fromEmail string, isProduction bool, logger *zap.SugaredLogger) *SendGridMailer {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	client := sendgrid.NewSendClient(apiKey)

	return &SendGridMailer{
		fromEmail: fromEmail,
		client:    client,
		// Sandbox mode is only used to validate your request. The email will never be delivered while this feature is enabled!
		isSandBox: !isProduction,
		logger:    logger,
	}
}

// Send renders the given template (which defines "subject" and "body"
// blocks) with data and sends the result through SendGrid, retrying with
// backoff on transient failures.
func (m SendGridMailer) Send(templateFile, toUsername, toEmail string, data any) (int, error) {
	from := mail.NewEmail(FROM_NAME, m.fromEmail)
	to := mail.NewEmail(toUsername, toEmail)

	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		m.logger.Errorf("Error occurred during mail template parsing, error: %v", err)
		return -1, err
	}

	subject := new(bytes.Buffer)
	err = tmpl.ExecuteTemplate(subject, "subject", data)
	if err != nil {
		m.logger.Errorf("Error occurred during extracting subject from mail template, error: %v", err)
		return -1, err
	}

	body := new(bytes.Buffer)
	err = tmpl.ExecuteTemplate(body, "body", data)
	if err != nil {
		m.logger.Errorf("Error occurred during extracting body from mail template, error: %v", err)
		return -1, err
	}

	message := mail.NewSingleEmail(from, subject.String(), to, "", body.String())

	message.SetMailSettings(&mail.MailSettings{
		SandboxMode: &mail.Setting{
			Enable: &m.isSandBox,
		},
	})

	return m.sendWithRetry(func() (int, error) {
		response, err := m.client.Send(message)
		if err != nil {
			return -1, err
		}
		return response.StatusCode, nil
	})
}

func (m SendGridMailer) sendWithRetry(send func() (int, error)) (int, error) {
	var lastErr error
	for i := 0; i < MAX_RETRY; i++ {
		code, err := send()
		if err == nil {
			return code, nil
		}
		lastErr = err

		// backoff before the next attempt
		if i < MAX_RETRY-1 {
			time.Sleep(time.Second * time.Duration(i+1))
		}
	}

	m.logger.Errorf("Failed to send email after %d attempts, error: %v", MAX_RETRY, lastErr)

	return -1, fmt.Errorf("failed to send email after %d attempts: %w", MAX_RETRY, lastErr)
}
