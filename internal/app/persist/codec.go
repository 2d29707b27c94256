package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"
)

const DefaultKey = "hugoland-game-state"

// Codec loads and saves the single player document under one key. Load never
// fails: any fault yields a fresh document.
type Codec struct {
	Store  ports.KeyValueStore
	Key    string
	Logger *log.Logger
	Now    func() time.Time
}

func (c Codec) Load(ctx context.Context) player.State {
	now := c.now()
	raw, err := c.Store.GetItem(ctx, c.key())
	if errors.Is(err, ports.ErrNotFound) || (err == nil && raw == "") {
		return player.NewState(now)
	}
	if err != nil {
		c.logger().Printf("persist: load %q failed, starting fresh: %v", c.key(), err)
		return player.NewState(now)
	}
	s, applied, err := Decode([]byte(raw), now)
	if err != nil {
		c.logger().Printf("persist: decode %q failed, starting fresh: %v", c.key(), err)
		return player.NewState(now)
	}
	if len(applied) > 0 {
		c.logger().Printf("persist: migrated %q through %v", c.key(), applied)
	}
	return s
}

// Save stamps the last-save time and writes the document. It returns the
// stamped copy alongside any write error; callers decide whether to log.
func (c Codec) Save(ctx context.Context, s player.State) (player.State, error) {
	s.Offline.LastSaveTime = c.now()
	raw, err := Encode(s)
	if err != nil {
		return s, err
	}
	if err := c.Store.SetItem(ctx, c.key(), string(raw)); err != nil {
		return s, fmt.Errorf("write %q: %w", c.key(), err)
	}
	return s, nil
}

func Encode(s player.State) ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return raw, nil
}

// Decode migrates raw to the current schema, fills missing fields from a
// fresh document built at now, then normalizes.
func Decode(raw []byte, now time.Time) (player.State, []string, error) {
	migrated, applied, err := Migrate(raw)
	if err != nil {
		return player.State{}, applied, err
	}
	s := player.NewState(now)
	if err := json.Unmarshal(migrated, &s); err != nil {
		return player.State{}, applied, fmt.Errorf("decode state: %w", err)
	}
	return player.Normalize(s), applied, nil
}

func (c Codec) key() string {
	if c.Key == "" {
		return DefaultKey
	}
	return c.Key
}

func (c Codec) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c Codec) logger() *log.Logger {
	if c.Logger == nil {
		return log.Default()
	}
	return c.Logger
}
