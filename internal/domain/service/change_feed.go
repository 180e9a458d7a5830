package service

import (
	"context"

	"eventhub/internal/domain/entity"
)

// ChangeHandler receives matching change events.
type ChangeHandler func(ctx context.Context, event entity.ChangeEvent)

// Subscription is an open change-feed subscription.
type Subscription interface {
	// Unsubscribe stops delivery. It is safe to call more than once.
	Unsubscribe()
}

// ChangeFeed delivers row-level change events to in-process subscribers.
type ChangeFeed interface {
	Subscribe(ctx context.Context, filter entity.ChangeFilter, handler ChangeHandler) (Subscription, error)
}

// ChangePublisher announces row-level changes to the change feed, possibly through a broker.
type ChangePublisher interface {
	PublishChange(ctx context.Context, event entity.ChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
