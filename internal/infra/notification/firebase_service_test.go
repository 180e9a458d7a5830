package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"eventhub/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	messages []*messaging.Message
	err      error
}

func (r *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	r.messages = append(r.messages, message)

	return "projects/test/messages/1", r.err
}

func TestFirebaseService_SendTopicNotification(t *testing.T) {
	t.Parallel()

	sender := &recordingSender{}
	svc := &firebaseService{client: sender}

	err := svc.SendTopicNotification(context.Background(), "vendor-123", "New inquiry", "Alice sent an inquiry", map[string]string{"inquiryId": "abc"})
	require.NoError(t, err)

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, "vendor-123", msg.Topic)
	assert.Equal(t, "New inquiry", msg.Notification.Title)
	assert.Equal(t, "abc", msg.Data["inquiryId"])
}

func TestFirebaseService_SendTopicNotificationError(t *testing.T) {
	t.Parallel()

	svc := &firebaseService{client: &recordingSender{err: errors.New("unavailable")}}

	err := svc.SendTopicNotification(context.Background(), "vendor-1", "t", "b", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vendor-1")
}

func TestNewNotificationService_DisabledFallsBackToLogging(t *testing.T) {
	t.Parallel()

	svc, err := NewNotificationService(Params{
		Config: &config.Config{Firebase: &config.FirebaseConfig{Enabled: false}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.IsType(t, &logOnlyService{}, svc)
	assert.NoError(t, svc.SendTopicNotification(context.Background(), "vendor-1", "t", "b", nil))
}
