package memory

import (
	"sync"

	"hugoland/internal/domain/player"
)

// Store backs the in-memory repositories. TxManager holds its lock for the
// duration of a transaction, so repositories sharing a Store observe one
// another's writes atomically.
type Store struct {
	mu     sync.RWMutex
	items  map[string]string
	events map[string][]player.DomainEvent
}

func NewStore() *Store {
	return &Store{
		items:  make(map[string]string),
		events: make(map[string][]player.DomainEvent),
	}
}
