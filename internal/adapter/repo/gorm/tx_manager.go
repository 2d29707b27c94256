package gormrepo

import (
	"context"

	"hugoland/internal/app/ports"

	"gorm.io/gorm"
)

// TxManager scopes KVStore and EventRepo calls made through ctx to one
// transaction. Nested calls join the outer transaction.
type TxManager struct {
	db *gorm.DB
}

var _ ports.TxManager = TxManager{}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return conn(ctx, t.db).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
