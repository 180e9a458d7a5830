package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"eventhub/config"
	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
	"eventhub/internal/infra/pubsub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type receivedEvents struct {
	mu         sync.Mutex
	events     []entity.ChangeEvent
	requestIDs []string
}

func (r *receivedEvents) handle(ctx context.Context, event entity.ChangeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	r.requestIDs = append(r.requestIDs, deliverycontext.GetRequestIDFromContext(ctx))
}

func pushBody(t *testing.T, event entity.ChangeEvent, attrs map[string]string) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(context.Background(), event, "m-1", "projects/p/subscriptions/s", time.Now())
	require.NoError(t, err)
	for k, v := range attrs {
		msg.Message.Attributes[k] = v
	}

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func TestPubSubPushHandler_HandlePush(t *testing.T) {
	event := entity.ChangeEvent{
		Table:  entity.TableVendorInquiries,
		Kind:   entity.ChangeInsert,
		Record: map[string]string{"vendor_id": "v1"},
	}

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		wantStatus int
		wantEvents int
	}{
		{
			name:       "dispatches into the hub",
			body:       func(t *testing.T) string { return pushBody(t, event, map[string]string{"request_id": "req-42"}) },
			wantStatus: http.StatusOK,
			wantEvents: 1,
		},
		{
			name:       "not json",
			body:       func(*testing.T) string { return `{"message":` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "data is not base64",
			body:       func(*testing.T) string { return `{"message":{"data":"%%%","messageId":"m-1"}}` },
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "event without table",
			body:       func(t *testing.T) string { return pushBody(t, entity.ChangeEvent{Kind: entity.ChangeInsert}, nil) },
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := pubsub.NewHub(testLogger())
			var got receivedEvents
			_, err := hub.Subscribe(context.Background(), entity.ChangeFilter{
				Table:  entity.TableVendorInquiries,
				Equals: map[string]string{"vendor_id": "v1"},
			}, got.handle)
			require.NoError(t, err)

			h := NewPubSubPushHandler(PubSubPushHandlerParams{Config: testConfig(), Hub: hub, Logger: testLogger()})
			e := newTestEcho()
			e.POST(pubsub.PushPath, h.HandlePush)

			rec := serve(e, jsonRequest(http.MethodPost, pubsub.PushPath, tt.body(t)))

			require.Equal(t, tt.wantStatus, rec.Code)
			require.Len(t, got.events, tt.wantEvents)
			if tt.wantEvents > 0 {
				assert.Equal(t, event.Record, got.events[0].Record)
				assert.Equal(t, "req-42", got.requestIDs[0])
			}
		})
	}
}

func googlePushConfig() *config.Config {
	cfg := testConfig()
	cfg.Env.Env = constants.EnvProduction
	cfg.PubSub = &config.PubSubConfig{
		Provider: constants.PubSubProviderGoogle,
		Google: &config.GooglePubSubConfig{
			Audience:            "https://eventhub.example/internal/pubsub/push",
			ServiceAccountEmail: "push@eventhub.iam.gserviceaccount.com",
		},
	}

	return cfg
}

func TestPubSubPushHandler_VerifyToken(t *testing.T) {
	okPayload := func() *idtoken.Payload {
		return &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{
				"email":          "push@eventhub.iam.gserviceaccount.com",
				"email_verified": true,
			},
		}
	}

	tests := []struct {
		name       string
		header     string
		payload    func() *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{name: "valid token", header: "Bearer good", payload: okPayload, wantStatus: http.StatusOK},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "validator rejects", header: "Bearer bad", validErr: errors.New("expired"), wantStatus: http.StatusUnauthorized},
		{
			name:   "foreign issuer",
			header: "Bearer good",
			payload: func() *idtoken.Payload {
				p := okPayload()
				p.Issuer = "https://evil.example"

				return p
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "other service account",
			header: "Bearer good",
			payload: func() *idtoken.Payload {
				p := okPayload()
				p.Claims["email"] = "someone@else.iam.gserviceaccount.com"

				return p
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hub := pubsub.NewHub(testLogger())
			h := NewPubSubPushHandler(PubSubPushHandlerParams{Config: googlePushConfig(), Hub: hub, Logger: testLogger()})
			require.True(t, h.verifyPushAuth)

			var gotAudience string
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				gotAudience = audience
				if tt.validErr != nil {
					return nil, tt.validErr
				}

				return tt.payload(), nil
			}

			e := newTestEcho()
			e.POST(pubsub.PushPath, h.HandlePush)

			req := jsonRequest(http.MethodPost, pubsub.PushPath, pushBody(t, entity.ChangeEvent{Table: entity.TableVendorProfiles, Kind: entity.ChangeUpdate}, nil))
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := serve(e, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if strings.HasPrefix(tt.header, "Bearer ") {
				assert.Equal(t, "https://eventhub.example/internal/pubsub/push", gotAudience)
			}
		})
	}
}

func TestPubSubPushHandler_DevelopSkipsVerification(t *testing.T) {
	cfg := googlePushConfig()
	cfg.Env.Env = constants.EnvDevelop

	h := NewPubSubPushHandler(PubSubPushHandlerParams{Config: cfg, Hub: pubsub.NewHub(testLogger()), Logger: testLogger()})

	assert.False(t, h.verifyPushAuth)
}

func TestPubSubPushHandler_AudienceFallsBackToRequestURL(t *testing.T) {
	cfg := googlePushConfig()
	cfg.PubSub.Google.Audience = ""

	h := NewPubSubPushHandler(PubSubPushHandlerParams{Config: cfg, Hub: pubsub.NewHub(testLogger()), Logger: testLogger()})

	var gotAudience string
	h.validate = func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		gotAudience = audience

		return &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email": "push@eventhub.iam.gserviceaccount.com"}}, nil
	}

	req := httptest.NewRequest(http.MethodPost, "http://worker.internal"+pubsub.PushPath, nil)
	req.Header.Set("Authorization", "Bearer t")

	require.NoError(t, h.verifyToken(req))
	assert.Equal(t, "http://worker.internal"+pubsub.PushPath, gotAudience)
}
