package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"

	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "save.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestItemsSurviveReopen(t *testing.T) {
	store, path := openTemp(t)
	ctx := context.Background()

	_, err := store.GetItem(ctx, "hugoland-game-state")
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, store.SetItem(ctx, "hugoland-game-state", `{"zone":3}`))
	require.NoError(t, store.SetItem(ctx, "hugoland-game-state", `{"zone":4}`))

	again, err := Open(path)
	require.NoError(t, err)
	defer again.Close()
	got, err := again.GetItem(ctx, "hugoland-game-state")
	require.NoError(t, err)
	require.Equal(t, `{"zone":4}`, got)
}

func TestJournalListsTailOldestFirst(t *testing.T) {
	store, _ := openTemp(t)
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, "s", []player.DomainEvent{
		{Type: player.EventChestOpened, OccurredAt: at, Payload: map[string]any{"cost": 100}},
		{Type: player.EventCombatStarted, OccurredAt: at.Add(time.Minute)},
		{Type: player.EventVictory, OccurredAt: at.Add(2 * time.Minute)},
	}))

	got, err := store.ListByStream(ctx, "s", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, player.EventCombatStarted, got[0].Type)
	require.Equal(t, player.EventVictory, got[1].Type)
	require.True(t, got[1].OccurredAt.Equal(at.Add(2*time.Minute)))

	all, err := store.ListByStream(ctx, "s", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.EqualValues(t, 100, all[0].Payload["cost"])
}

func TestRunInTxRollsBack(t *testing.T) {
	store, _ := openTemp(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := store.RunInTx(ctx, func(ctx context.Context) error {
		require.NoError(t, store.SetItem(ctx, "k", "{}"))
		require.NoError(t, store.Append(ctx, "k", []player.DomainEvent{{Type: player.EventReset, OccurredAt: time.Now()}}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = store.GetItem(ctx, "k")
	require.ErrorIs(t, err, ports.ErrNotFound)
	events, err := store.ListByStream(ctx, "k", 10)
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestJournalReportsUndecodablePayload(t *testing.T) {
	store, _ := openTemp(t)
	ctx := context.Background()

	_, err := store.sqlDB.ExecContext(ctx,
		`INSERT INTO game_events (stream_id, type, occurred_at, payload) VALUES (?, ?, ?, ?)`,
		"slot", player.EventGemMined, toMillis(time.Now()), `{"gems":`,
	)
	require.NoError(t, err)

	_, err = store.ListByStream(ctx, "slot", 10)
	require.ErrorContains(t, err, "decode "+player.EventGemMined+" payload")
}
