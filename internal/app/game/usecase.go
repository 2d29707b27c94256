package game

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hugoland/internal/app/persist"
	"hugoland/internal/app/store"
	"hugoland/internal/domain/player"
)

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrInvalidParams    = errors.New("invalid operation params")
)

type UseCase struct {
	Store  *store.Store
	Engine player.Engine
	Now    func() time.Time
}

// Execute dispatches a named operation to its transform. Unknown names and
// malformed params are errors; a refused transform is a normal response with
// Accepted false.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	op := strings.TrimSpace(req.Op)
	spec, ok := registry()[op]
	if !ok {
		return Response{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	var params Params
	if raw := bytes.TrimSpace(req.Params); len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
		if err := json.Unmarshal(raw, &params); err != nil {
			return Response{}, fmt.Errorf("%w: %v", ErrInvalidParams, err)
		}
	}
	if !spec.Validate(params) {
		return Response{}, fmt.Errorf("%w: %s", ErrInvalidParams, op)
	}

	out := u.Store.Transform(ctx, op, spec.Build(u.Engine, params))
	return Response{
		Op:       op,
		Accepted: out.Accepted,
		Reason:   out.Reason,
		State:    out.State,
		Events:   out.Events,
		Reward:   out.Reward,
	}, nil
}

// Reset replaces the document with a fresh one and writes it immediately.
// With a transactional backend the write and the journal entry commit together.
func (u UseCase) Reset(ctx context.Context) (player.State, error) {
	return u.Store.Reset(ctx, func(now time.Time) player.State {
		return u.Engine.Reconcile(player.NewState(now), now)
	})
}

// Boot loads the stored document and runs the accrual pipeline once.
func Boot(ctx context.Context, codec persist.Codec, eng player.Engine, now time.Time, logger *log.Logger) player.State {
	if logger == nil {
		logger = log.Default()
	}
	loaded := codec.Load(ctx)
	if loaded.InCombat {
		logger.Printf("game: clearing encounter left open at last save")
	}
	return eng.Reconcile(loaded, now)
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

// Save flushes the committed document now instead of waiting for autosave.
func (u UseCase) Save(ctx context.Context) error {
	return u.Store.Save(ctx)
}
