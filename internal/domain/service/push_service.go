package service

import "context"

// PushService defines the interface for push notification delivery. Reminder
// recipients subscribe their devices to per-vehicle topics on the client, so
// the engine addresses topics rather than individual device tokens.
type PushService interface {
	// SendToTopic sends a push notification to every device subscribed to
	// the topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}

// MailService defines the interface for reminder email delivery.
type MailService interface {
	// SendReminderMail sends a due-reminder email to a single recipient.
	SendReminderMail(ctx context.Context, toEmail, recipientName, title, body string) error
}
