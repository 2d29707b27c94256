package ports

import (
	"context"

	"hugoland/internal/domain/player"
)

// KeyValueStore holds the serialized document. GetItem returns ErrNotFound
// when nothing was stored under key yet.
type KeyValueStore interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
}

// EventRepository is the append-only journal of accepted transforms, keyed by
// the storage key of the document that produced them.
type EventRepository interface {
	Append(ctx context.Context, streamID string, events []player.DomainEvent) error
	ListByStream(ctx context.Context, streamID string, limit int) ([]player.DomainEvent, error)
}

// StatusEvaluator reports achievement and tag records satisfied by a document.
// It may return records that are already unlocked; callers filter them.
type StatusEvaluator interface {
	Evaluate(s player.State) []player.StatusRecord
}
