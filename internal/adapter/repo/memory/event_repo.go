package memory

import (
	"context"
	"slices"

	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"
)

type EventRepo struct {
	store *Store
}

var _ ports.EventRepository = EventRepo{}

func NewEventRepo(store *Store) EventRepo {
	return EventRepo{store: store}
}

func (r EventRepo) Append(ctx context.Context, streamID string, events []player.DomainEvent) error {
	if !inTx(ctx, r.store) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.events[streamID] = append(r.store.events[streamID], events...)
	return nil
}

func (r EventRepo) ListByStream(ctx context.Context, streamID string, limit int) ([]player.DomainEvent, error) {
	if !inTx(ctx, r.store) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	all := r.store.events[streamID]
	if limit > 0 && len(all) > limit {
		all = all[len(all)-limit:]
	}
	return slices.Clone(all), nil
}
