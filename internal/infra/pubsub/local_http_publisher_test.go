package pubsub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PushMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	pub := NewLocalHTTPPublisher(server.URL, testLogger())
	require.NoError(t, pub.PublishChange(context.Background(), inquiryInsert("v1")))

	assert.Equal(t, localSubscription, received.Subscription)
	assert.NotEmpty(t, received.Message.MessageID)

	event, err := received.Event()
	require.NoError(t, err)
	assert.Equal(t, "v1", event.Record["vendor_id"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	pub := NewLocalHTTPPublisher(server.URL, testLogger())
	err := pub.PublishChange(context.Background(), inquiryInsert("v1"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
