package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"

	"github.com/nats-io/nats.go"
)

// natsBridge publishes change events to a NATS subject and dispatches every
// message on that subject into the local hub, so all instances see all changes.
type natsBridge struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to url and subscribes hub to subject.
func NewNATSPublisher(url, subject string, hub *Hub, logger *slog.Logger) (service.ChangePublisher, error) {
	nc, err := nats.Connect(url, nats.Name("eventhub"))
	if err != nil {
		return nil, errors.Wrap(err, "nats connect")
	}

	b := &natsBridge{nc: nc, subject: subject, logger: logger}

	b.sub, err = nc.Subscribe(subject, func(msg *nats.Msg) {
		b.deliver(hub, msg.Data)
	})
	if err != nil {
		nc.Close()

		return nil, errors.Wrapf(err, "nats subscribe %s", subject)
	}

	logger.Info("NATS change feed connected",
		slog.String("url", url),
		slog.String("subject", subject),
	)

	return b, nil
}

func (b *natsBridge) deliver(hub *Hub, data []byte) {
	event, err := DecodeEvent(data)
	if err != nil {
		b.logger.Warn("[NATS] Dropping malformed change event", slog.Any("error", err))

		return
	}

	if _, err := hub.Dispatch(context.Background(), event); err != nil {
		b.logger.Error("[NATS] Failed to dispatch change event",
			slog.String("table", event.Table),
			slog.Any("error", err),
		)
	}
}

func (b *natsBridge) PublishChange(_ context.Context, event entity.ChangeEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := b.nc.Publish(b.subject, data); err != nil {
		return errors.Wrapf(err, "nats publish %s", b.subject)
	}

	return nil
}

// Close drains the subscription and closes the connection.
func (b *natsBridge) Close() error {
	if b.sub != nil {
		if err := b.sub.Unsubscribe(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
			b.logger.Warn("[NATS] Unsubscribe failed", slog.Any("error", err))
		}
	}
	b.nc.Close()

	return nil
}
