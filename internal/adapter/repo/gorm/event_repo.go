package gormrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"hugoland/internal/adapter/repo/gorm/model"
	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepo struct {
	db *gorm.DB
}

var _ ports.EventRepository = EventRepo{}

func NewEventRepo(db *gorm.DB) EventRepo {
	return EventRepo{db: db}
}

func (r EventRepo) Append(ctx context.Context, streamID string, events []player.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.GameEvent, 0, len(events))
	for _, e := range events {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return fmt.Errorf("encode %s payload: %w", e.Type, err)
		}
		rows = append(rows, model.GameEvent{
			StreamID:   streamID,
			Type:       e.Type,
			OccurredAt: e.OccurredAt,
			Payload:    string(b),
		})
	}
	return conn(ctx, r.db).Create(&rows).Error
}

// ListByStream returns the newest limit events, oldest first.
func (r EventRepo) ListByStream(ctx context.Context, streamID string, limit int) ([]player.DomainEvent, error) {
	rows := []model.GameEvent{}
	query := conn(ctx, r.db).
		Where(&model.GameEvent{StreamID: streamID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "id"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	slices.Reverse(rows)

	out := make([]player.DomainEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if row.Payload != "" {
			if err := json.Unmarshal([]byte(row.Payload), &payload); err != nil {
				return nil, fmt.Errorf("decode %s payload of event %d: %w", row.Type, row.ID, err)
			}
		}
		out = append(out, player.DomainEvent{
			Type:       row.Type,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
