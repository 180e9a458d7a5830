package pubsub

import (
	"context"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
)

// memoryPublisher dispatches straight into the hub of this process.
type memoryPublisher struct {
	hub *Hub
}

// NewMemoryPublisher creates a publisher that delivers in-process only.
func NewMemoryPublisher(hub *Hub) service.ChangePublisher {
	return &memoryPublisher{hub: hub}
}

func (p *memoryPublisher) PublishChange(ctx context.Context, event entity.ChangeEvent) error {
	_, err := p.hub.Dispatch(ctx, event)

	return err
}

func (p *memoryPublisher) Close() error {
	return nil
}
