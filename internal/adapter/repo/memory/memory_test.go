package memory

import (
	"context"
	"testing"
	"time"

	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"

	"github.com/stretchr/testify/require"
)

func TestKVStore_GetSet(t *testing.T) {
	kv := NewKVStore(NewStore())
	ctx := context.Background()

	_, err := kv.GetItem(ctx, "k")
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, kv.SetItem(ctx, "k", "v1"))
	require.NoError(t, kv.SetItem(ctx, "k", "v2"))
	got, err := kv.GetItem(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v2", got)
}

func TestEventRepo_ListsTailPerStream(t *testing.T) {
	repo := NewEventRepo(NewStore())
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(ctx, "a", []player.DomainEvent{
		{Type: player.EventChestOpened, OccurredAt: at},
		{Type: player.EventVictory, OccurredAt: at.Add(time.Minute)},
		{Type: player.EventDefeat, OccurredAt: at.Add(2 * time.Minute)},
	}))
	require.NoError(t, repo.Append(ctx, "b", []player.DomainEvent{{Type: player.EventReset, OccurredAt: at}}))

	got, err := repo.ListByStream(ctx, "a", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, player.EventVictory, got[0].Type)
	require.Equal(t, player.EventDefeat, got[1].Type)

	all, err := repo.ListByStream(ctx, "b", 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestTxManager_ReposJoinTransaction(t *testing.T) {
	store := NewStore()
	kv, events, tx := NewKVStore(store), NewEventRepo(store), NewTxManager(store)

	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := kv.SetItem(ctx, "k", "{}"); err != nil {
			return err
		}
		return tx.RunInTx(ctx, func(ctx context.Context) error {
			return events.Append(ctx, "k", []player.DomainEvent{{Type: player.EventReset}})
		})
	})
	require.NoError(t, err)

	got, err := kv.GetItem(context.Background(), "k")
	require.NoError(t, err)
	require.Equal(t, "{}", got)
}
