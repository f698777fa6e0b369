package notification

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"fleetdesk/config"
	"fleetdesk/internal/domain/service"
)

type firebaseService struct {
	client      *messaging.Client
	topicPrefix string
}

// NewFirebaseService creates a Firebase-backed push service. Notifications
// are fanned out per-vehicle through FCM topics so clients only subscribe to
// the vehicles they watch.
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	opt := option.WithCredentialsFile(cfg.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client:      client,
		topicPrefix: cfg.TopicPrefix,
	}, nil
}

// SendToTopic publishes a push notification on the given topic.
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: s.qualifiedTopic(topic),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

func (s *firebaseService) qualifiedTopic(topic string) string {
	if s.topicPrefix == "" || strings.HasPrefix(topic, s.topicPrefix) {
		return topic
	}

	return s.topicPrefix + topic
}
