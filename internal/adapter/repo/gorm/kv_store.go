package gormrepo

import (
	"context"
	"errors"
	"time"

	"hugoland/internal/adapter/repo/gorm/model"
	"hugoland/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KVStore struct {
	db *gorm.DB
}

var _ ports.KeyValueStore = KVStore{}

func NewKVStore(db *gorm.DB) KVStore {
	return KVStore{db: db}
}

func (r KVStore) GetItem(ctx context.Context, key string) (string, error) {
	var m model.KvEntry
	if err := conn(ctx, r.db).Where("key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ports.ErrNotFound
		}
		return "", err
	}
	return m.Value, nil
}

func (r KVStore) SetItem(ctx context.Context, key, value string) error {
	m := model.KvEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return conn(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
}
