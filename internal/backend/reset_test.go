package backend

import (
	"context"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"hugoland/internal/adapter/content/standard"
	"hugoland/internal/app/game"
	"hugoland/internal/app/persist"
	"hugoland/internal/app/store"
	"hugoland/internal/config"
	"hugoland/internal/domain/catalog"
	"hugoland/internal/domain/player"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGame wires a use case the way cmd/server does: one seeded generator
// shared by the engine and the content generator, a running saver, and the
// backend's transaction scope.
func newGame(t *testing.T, b Backend) (game.UseCase, *store.Store) {
	t.Helper()
	cat := catalog.Default()
	rng := rand.New(rand.NewPCG(1, 2))
	eng := player.Engine{Catalog: cat, Content: standard.New(cat, rng), Rand: rng}
	codec := persist.Codec{Store: b.KV, Key: "slot", Logger: quiet}
	saver := store.NewSaver(codec, quiet, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = saver.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	st := store.New(game.Boot(context.Background(), codec, eng, time.Now(), quiet), store.Options{
		Engine:   eng,
		Events:   b.Events,
		StreamID: "slot",
		Saver:    saver,
		Tx:       b.Tx,
		Logger:   quiet,
	})
	return game.UseCase{Store: st, Engine: eng}, st
}

func runResetAgainstActions(t *testing.T, b Backend, rounds int) {
	t.Helper()
	uc, st := newGame(t, b)
	ctx := context.Background()

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range rounds {
				_, err := uc.Reset(ctx)
				assert.NoError(t, err)
			}
		}()
		go func() {
			defer wg.Done()
			for range rounds {
				_, err := uc.Execute(ctx, game.Request{Op: game.OpMineGem})
				assert.NoError(t, err)
			}
		}()
		wg.Wait()
	}()

	select {
	case <-finished:
	case <-time.After(30 * time.Second):
		t.Fatal("reset and actions did not finish; lock order inverted")
	}

	require.NoError(t, uc.Save(ctx))
	want := st.Snapshot().Currencies
	require.Eventually(t, func() bool {
		stored, err := b.KV.GetItem(ctx, "slot")
		if err != nil {
			return false
		}
		decoded, _, err := persist.Decode([]byte(stored), time.Now())
		return err == nil && decoded.Currencies == want
	}, 5*time.Second, 10*time.Millisecond)

	events, err := b.Events.ListByStream(ctx, "slot", 0)
	require.NoError(t, err)
	resets := 0
	for _, e := range events {
		if e.Type == player.EventReset {
			resets++
		}
	}
	require.Equal(t, rounds, resets)
}

func TestResetConcurrentWithActionsOnMemory(t *testing.T) {
	b, err := Open(context.Background(), config.Config{Storage: config.StorageMemory}, quiet)
	require.NoError(t, err)
	defer b.Close()

	runResetAgainstActions(t, b, 500)
}

func TestResetConcurrentWithActionsOnSQLite(t *testing.T) {
	cfg := config.Config{Storage: config.StorageSQLite, SQLitePath: filepath.Join(t.TempDir(), "save.db")}
	b, err := Open(context.Background(), cfg, quiet)
	require.NoError(t, err)
	defer b.Close()

	runResetAgainstActions(t, b, 50)
}
