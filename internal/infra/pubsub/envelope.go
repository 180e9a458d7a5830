package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"time"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

// PushMessage is the body Google Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// changeAttributes are attached to every published message for filtering.
// The request id lets the push side log under the originating request.
func changeAttributes(ctx context.Context, event entity.ChangeEvent) map[string]string {
	attrs := map[string]string{
		"table": event.Table,
		"kind":  string(event.Kind),
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attrs["request_id"] = requestID
	}

	return attrs
}

// NewPushMessage wraps event in a push envelope.
func NewPushMessage(ctx context.Context, event entity.ChangeEvent, messageID, subscription string, now time.Time) (*PushMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = changeAttributes(ctx, event)
	msg.Message.MessageID = messageID
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339)

	return msg, nil
}

// Event decodes the change event carried by the envelope.
func (m *PushMessage) Event() (entity.ChangeEvent, error) {
	var event entity.ChangeEvent

	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return event, errors.Wrap(err, "failed to decode message data")
	}

	return DecodeEvent(data)
}

// DecodeEvent parses a JSON change event and checks it names a table.
func DecodeEvent(data []byte) (entity.ChangeEvent, error) {
	var event entity.ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return event, errors.Wrap(err, "failed to parse change event")
	}
	if event.Table == "" {
		return event, ErrInvalidEvent
	}

	return event, nil
}
