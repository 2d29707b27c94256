package memory

import (
	"context"

	"hugoland/internal/app/ports"
)

type txKey struct{}

type TxManager struct {
	store *Store
}

var _ ports.TxManager = TxManager{}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// RunInTx serializes fn against every other access to the store. Writes are
// not rolled back when fn fails.
func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if inTx(ctx, t.store) {
		return fn(ctx)
	}
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, t.store))
}

func inTx(ctx context.Context, store *Store) bool {
	s, _ := ctx.Value(txKey{}).(*Store)
	return s == store
}
