package pubsub

import (
	"context"
	"testing"

	"eventhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func providerParams(t *testing.T, cfg *config.Config) (PublisherParams, *fxtest.Lifecycle) {
	lc := fxtest.NewLifecycle(t)

	return PublisherParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: cfg,
		Logger: testLogger(),
		Hub:    NewHub(testLogger()),
	}, lc
}

func TestNewChangePublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr string
		check   func(t *testing.T, p any)
	}{
		{
			name:   "nil config is a no-op",
			pubsub: nil,
			check:  func(t *testing.T, p any) { assert.IsType(t, &noopPublisher{}, p) },
		},
		{
			name:   "none is a no-op",
			pubsub: &config.PubSubConfig{Provider: "none"},
			check:  func(t *testing.T, p any) { assert.IsType(t, &noopPublisher{}, p) },
		},
		{
			name:   "memory",
			pubsub: &config.PubSubConfig{Provider: "memory"},
			check:  func(t *testing.T, p any) { assert.IsType(t, &memoryPublisher{}, p) },
		},
		{
			name:   "local defaults to own push route",
			pubsub: &config.PubSubConfig{Provider: "local"},
			check: func(t *testing.T, p any) {
				local, ok := p.(*localHTTPPublisher)
				require.True(t, ok)
				assert.Equal(t, "http://127.0.0.1:8080/internal/pubsub/push", local.endpoint)
			},
		},
		{
			name: "local with endpoint",
			pubsub: &config.PubSubConfig{
				Provider: "local",
				Local:    &config.LocalPubSubConfig{PushEndpoint: "http://worker/push"},
			},
			check: func(t *testing.T, p any) {
				assert.Equal(t, "http://worker/push", p.(*localHTTPPublisher).endpoint)
			},
		},
		{
			name:    "google requires project",
			pubsub:  &config.PubSubConfig{Provider: "google", TopicID: "changes"},
			wantErr: "project ID",
		},
		{
			name: "google requires topic",
			pubsub: &config.PubSubConfig{
				Provider: "google",
				Google:   &config.GooglePubSubConfig{ProjectID: "p"},
			},
			wantErr: "topic ID",
		},
		{
			name:    "nats requires url",
			pubsub:  &config.PubSubConfig{Provider: "nats"},
			wantErr: "url is required",
		},
		{
			name:    "unknown provider",
			pubsub:  &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: tt.pubsub}
			cfg.HTTP.Port = 8080
			params, lc := providerParams(t, cfg)

			pub, err := NewChangePublisher(params)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, pub)

			lc.RequireStart().RequireStop()
		})
	}
}
