// Package notification sends push notifications through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"eventhub/config"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params defines the dependencies of NewNotificationService.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// messageSender is the subset of *messaging.Client used here.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
}

// NewNotificationService returns a Firebase-backed service when firebase.enabled is set,
// and a service that only logs otherwise.
func NewNotificationService(params Params) (service.NotificationService, error) {
	if params.Config.Firebase == nil || !params.Config.Firebase.Enabled {
		params.Logger.Info("Firebase disabled, push notifications will only be logged")

		return &logOnlyService{logger: params.Logger}, nil
	}

	return NewFirebaseService(context.Background(), params.Config.Firebase)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.NotificationService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendTopicNotification sends a push notification to every device subscribed to topic.
func (s *firebaseService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrapf(err, "failed to send notification to topic %s", topic)
	}

	return nil
}

type logOnlyService struct {
	logger *slog.Logger
}

func (s *logOnlyService) SendTopicNotification(ctx context.Context, topic, title, _ string, _ map[string]string) error {
	s.logger.DebugContext(ctx, "Push notification skipped",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}
