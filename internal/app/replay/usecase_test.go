package replay

import (
	"context"
	"errors"
	"testing"
	"time"

	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"
)

var t0 = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type journal struct {
	events    []player.DomainEvent
	err       error
	gotLimit  int
	gotStream string
}

var _ ports.EventRepository = (*journal)(nil)

func (j *journal) Append(context.Context, string, []player.DomainEvent) error { return nil }

func (j *journal) ListByStream(_ context.Context, streamID string, limit int) ([]player.DomainEvent, error) {
	j.gotStream = streamID
	j.gotLimit = limit
	if j.err != nil {
		return nil, j.err
	}
	return j.events, nil
}

func sample() []player.DomainEvent {
	return []player.DomainEvent{
		{Type: player.EventChestOpened, OccurredAt: t0},
		{Type: player.EventCombatStarted, OccurredAt: t0.Add(time.Minute)},
		{Type: player.EventVictory, OccurredAt: t0.Add(2 * time.Minute)},
		{Type: player.EventChestOpened, OccurredAt: t0.Add(3 * time.Minute)},
	}
}

func TestUseCase_DefaultsAndCapsLimit(t *testing.T) {
	j := &journal{events: sample()}
	uc := UseCase{Events: j, StreamID: "local"}

	resp, err := uc.Execute(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if j.gotLimit != DefaultLimit || j.gotStream != "local" {
		t.Fatalf("expected default limit on stream local, got %d %q", j.gotLimit, j.gotStream)
	}
	if len(resp.Events) != 4 || resp.Counts[player.EventChestOpened] != 2 {
		t.Fatalf("unexpected response: %+v", resp.Counts)
	}

	if _, err := uc.Execute(context.Background(), Request{Limit: 10000}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if j.gotLimit != MaxLimit {
		t.Fatalf("expected limit capped at %d, got %d", MaxLimit, j.gotLimit)
	}
}

func TestUseCase_FiltersByTypeAndWindow(t *testing.T) {
	uc := UseCase{Events: &journal{events: sample()}}

	resp, err := uc.Execute(context.Background(), Request{
		Types: []string{player.EventChestOpened, player.EventVictory},
		From:  t0.Add(30 * time.Second),
		To:    t0.Add(3 * time.Minute),
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(resp.Events) != 2 || resp.Events[0].Type != player.EventVictory || resp.Events[1].Type != player.EventChestOpened {
		t.Fatalf("unexpected filtered events: %+v", resp.Events)
	}
}

func TestUseCase_RejectsBadRequest(t *testing.T) {
	uc := UseCase{Events: &journal{}}
	if _, err := uc.Execute(context.Background(), Request{Limit: -1}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), Request{From: t0, To: t0.Add(-time.Second)}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for inverted window, got %v", err)
	}
}

func TestUseCase_PropagatesRepositoryError(t *testing.T) {
	wantErr := errors.New("journal down")
	uc := UseCase{Events: &journal{err: wantErr}}
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, wantErr) {
		t.Fatalf("expected %v, got %v", wantErr, err)
	}
}
