package mailer

import "embed"

const (
	FROM_NAME                  = "InteriorHub"
	MAX_RETRY                  = 3
	LEAD_NOTIFICATION_TEMPLATE = "lead_notification.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, toUsername, toEmail string, data any) (int, error)
}
