package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"github.com/google/uuid"
)

const localSubscription = "projects/local/subscriptions/eventhub-changes"

// localHTTPPublisher POSTs push envelopes to an HTTP endpoint, simulating
// Pub/Sub push delivery for development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.ChangePublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
		now:    time.Now,
	}
}

// PublishChange wraps the event in a push envelope and sends it to the endpoint
func (p *localHTTPPublisher) PublishChange(ctx context.Context, event entity.ChangeEvent) error {
	pushMsg, err := NewPushMessage(ctx, event, uuid.NewString(), localSubscription, p.now())
	if err != nil {
		return err
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Change published",
		slog.String("table", event.Table),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
