// Package pubsub carries row-level change events from publishers to
// in-process change-feed subscribers.
package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
)

// ErrInvalidEvent is returned by Dispatch for events without a table.
var ErrInvalidEvent = errors.New("change event has no table")

type subscriber struct {
	filter  entity.ChangeFilter
	handler service.ChangeHandler
}

// Hub fans change events out to in-process subscribers.
type Hub struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[uint64]subscriber
	logger *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subs:   make(map[uint64]subscriber),
		logger: logger,
	}
}

// Subscribe registers handler for events matching filter.
func (h *Hub) Subscribe(_ context.Context, filter entity.ChangeFilter, handler service.ChangeHandler) (service.Subscription, error) {
	if filter.Table == "" {
		return nil, errors.New("subscription filter requires a table")
	}
	if handler == nil {
		return nil, errors.New("subscription requires a handler")
	}

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subs[id] = subscriber{filter: filter, handler: handler}
	h.mu.Unlock()

	return &hubSubscription{hub: h, id: id}, nil
}

// Dispatch delivers event to every matching subscriber and returns how many
// handlers ran.
func (h *Hub) Dispatch(ctx context.Context, event entity.ChangeEvent) (int, error) {
	if event.Table == "" {
		return 0, ErrInvalidEvent
	}

	h.mu.RLock()
	matched := make([]service.ChangeHandler, 0, len(h.subs))
	for _, sub := range h.subs {
		if sub.filter.Matches(event) {
			matched = append(matched, sub.handler)
		}
	}
	h.mu.RUnlock()

	for _, handler := range matched {
		handler(ctx, event)
	}

	h.logger.Debug("Change event dispatched",
		slog.String("table", event.Table),
		slog.String("kind", string(event.Kind)),
		slog.Int("handlers", len(matched)),
	)

	return len(matched), nil
}

// Len returns the number of open subscriptions.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	delete(h.subs, id)
	h.mu.Unlock()
}

type hubSubscription struct {
	hub  *Hub
	id   uint64
	once sync.Once
}

func (s *hubSubscription) Unsubscribe() {
	s.once.Do(func() { s.hub.remove(s.id) })
}
