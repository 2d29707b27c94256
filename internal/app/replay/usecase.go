package replay

import (
	"context"
	"errors"
	"slices"

	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"
)

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

var ErrInvalidRequest = errors.New("invalid replay request")

type UseCase struct {
	Events   ports.EventRepository
	StreamID string
}

// Execute lists the newest journal entries, oldest first, narrowed by type
// and occurrence window.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Limit < 0 || (!req.From.IsZero() && !req.To.IsZero() && req.To.Before(req.From)) {
		return Response{}, ErrInvalidRequest
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultLimit
	}
	limit = min(limit, MaxLimit)

	events, err := u.Events.ListByStream(ctx, u.StreamID, limit)
	if err != nil {
		return Response{}, err
	}
	events = filter(events, req)
	return Response{Events: events, Counts: countByType(events)}, nil
}

func filter(events []player.DomainEvent, req Request) []player.DomainEvent {
	out := make([]player.DomainEvent, 0, len(events))
	for _, evt := range events {
		if len(req.Types) > 0 && !slices.Contains(req.Types, evt.Type) {
			continue
		}
		if !req.From.IsZero() && evt.OccurredAt.Before(req.From) {
			continue
		}
		if !req.To.IsZero() && evt.OccurredAt.After(req.To) {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func countByType(events []player.DomainEvent) map[string]int {
	counts := make(map[string]int, len(events))
	for _, evt := range events {
		counts[evt.Type]++
	}
	return counts
}
