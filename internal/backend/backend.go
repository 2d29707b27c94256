// Package backend opens the storage selected by configuration.
package backend

import (
	"context"
	"fmt"
	"log"

	sqlitekv "hugoland/internal/adapter/kv/sqlite"
	gormrepo "hugoland/internal/adapter/repo/gorm"
	memrepo "hugoland/internal/adapter/repo/memory"
	"hugoland/internal/app/ports"
	"hugoland/internal/config"
)

// Backend is the document store, journal and transaction scope of one
// storage choice. All three share a connection so a transaction covers both.
type Backend struct {
	KV     ports.KeyValueStore
	Events ports.EventRepository
	Tx     ports.TxManager
	close  func() error
}

func (b Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open connects to the configured storage. Postgres schemas are migrated first.
func Open(ctx context.Context, cfg config.Config, logger *log.Logger) (Backend, error) {
	if logger == nil {
		logger = log.Default()
	}
	switch cfg.Storage {
	case config.StorageMemory:
		mem := memrepo.NewStore()
		return Backend{
			KV:     memrepo.NewKVStore(mem),
			Events: memrepo.NewEventRepo(mem),
			Tx:     memrepo.NewTxManager(mem),
		}, nil

	case config.StorageSQLite:
		store, err := sqlitekv.Open(cfg.SQLitePath)
		if err != nil {
			return Backend{}, err
		}
		return Backend{KV: store, Events: store, Tx: store, close: store.Close}, nil

	case config.StoragePostgres:
		db, err := gormrepo.OpenPostgres(cfg.DatabaseDSN)
		if err != nil {
			return Backend{}, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return Backend{}, err
		}
		applied, err := gormrepo.ApplyMigrations(ctx, db, cfg.MigrationsDir)
		if err != nil {
			_ = sqlDB.Close()
			return Backend{}, fmt.Errorf("migrate postgres: %w", err)
		}
		for _, v := range applied {
			logger.Printf("backend: applied migration %s", v)
		}
		return Backend{
			KV:     gormrepo.NewKVStore(db),
			Events: gormrepo.NewEventRepo(db),
			Tx:     gormrepo.NewTxManager(db),
			close:  sqlDB.Close,
		}, nil

	default:
		return Backend{}, fmt.Errorf("%w: unknown storage %q", config.ErrInvalidConfig, cfg.Storage)
	}
}
