package memory

import (
	"context"

	"hugoland/internal/app/ports"
)

type KVStore struct {
	store *Store
}

var _ ports.KeyValueStore = KVStore{}

func NewKVStore(store *Store) KVStore {
	return KVStore{store: store}
}

func (r KVStore) GetItem(ctx context.Context, key string) (string, error) {
	if !inTx(ctx, r.store) {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	v, ok := r.store.items[key]
	if !ok {
		return "", ports.ErrNotFound
	}
	return v, nil
}

func (r KVStore) SetItem(ctx context.Context, key, value string) error {
	if !inTx(ctx, r.store) {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	r.store.items[key] = value
	return nil
}
