package pubsub

import (
	"context"
	"testing"
	"time"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushMessage_RoundTrip(t *testing.T) {
	event := inquiryInsert("v1")
	event.OccurredAt = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	ctx := deliverycontext.WithRequestID(context.Background(), "req-7")
	msg, err := NewPushMessage(ctx, event, "msg-1", "projects/p/subscriptions/s", event.OccurredAt)
	require.NoError(t, err)

	assert.Equal(t, "msg-1", msg.Message.MessageID)
	assert.Equal(t, "2025-06-15T12:00:00Z", msg.Message.PublishTime)
	assert.Equal(t, entity.TableVendorInquiries, msg.Message.Attributes["table"])
	assert.Equal(t, "insert", msg.Message.Attributes["kind"])
	assert.Equal(t, "req-7", msg.Message.Attributes["request_id"])

	decoded, err := msg.Event()
	require.NoError(t, err)
	assert.Equal(t, event.Table, decoded.Table)
	assert.Equal(t, event.Record, decoded.Record)
	assert.True(t, event.OccurredAt.Equal(decoded.OccurredAt))
}

func TestPushMessage_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not base64", data: "%%%"},
		{name: "not json", data: "bm90IGpzb24="},
		{name: "missing table", data: "eyJraW5kIjoiaW5zZXJ0In0="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg PushMessage
			msg.Message.Data = tt.data

			_, err := msg.Event()
			assert.Error(t, err)
		})
	}
}
