package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"eventhub/config"
	"eventhub/internal/domain/constants"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"go.uber.org/fx"
)

// PushPath is the route that receives push envelopes.
const PushPath = "/internal/pubsub/push"

// noopPublisher drops every change when the feed is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishChange(_ context.Context, event entity.ChangeEvent) error {
	p.logger.Debug("[NoopPubSub] Change feed disabled, skipping",
		slog.String("table", event.Table),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for ChangePublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Hub    *Hub
}

// NewChangePublisher creates a ChangePublisher based on configuration
func NewChangePublisher(params PublisherParams) (service.ChangePublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == constants.PubSubProviderNone {
		logger.Info("Change feed disabled, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.ChangePublisher
	var err error

	switch cfg.Provider {
	case "", constants.PubSubProviderMemory:
		logger.Info("Using in-process change feed")

		publisher = NewMemoryPublisher(params.Hub)

	case constants.PubSubProviderLocal:
		endpoint := fmt.Sprintf("http://127.0.0.1:%d%s", params.Config.HTTP.Port, PushPath)
		if cfg.Local != nil && cfg.Local.PushEndpoint != "" {
			endpoint = cfg.Local.PushEndpoint
		}
		logger.Info("Using local HTTP publisher for change feed",
			slog.String("endpoint", endpoint),
		)

		publisher = NewLocalHTTPPublisher(endpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.Google == nil || cfg.Google.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.Google.ProjectID, cfg.TopicID, cfg.Google.CredentialsPath, logger)
		if err != nil {
			return nil, err
		}

	case constants.PubSubProviderNATS:
		if cfg.NATS == nil || cfg.NATS.URL == "" {
			return nil, errors.New("url is required for nats provider")
		}

		publisher, err = NewNATSPublisher(cfg.NATS.URL, cfg.NATS.Subject, params.Hub, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ChangePublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func asChangeFeed(hub *Hub) service.ChangeFeed {
	return hub
}

// Module provides the change feed FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewHub,
		asChangeFeed,
		NewChangePublisher,
	),
)
