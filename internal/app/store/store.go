package store

import (
	"context"
	"log"
	"sync"
	"time"

	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"
)

// TransformFunc computes the next document from the committed one.
type TransformFunc func(s player.State, now time.Time) player.Outcome

type Options struct {
	Engine     player.Engine
	Evaluators []ports.StatusEvaluator
	Events     ports.EventRepository
	StreamID   string
	Metrics    ports.TransformMetrics
	Saver      *Saver
	Tx         ports.TxManager
	Logger     *log.Logger
	Now        func() time.Time
}

// Store owns the canonical document. Transforms run one at a time against the
// latest committed generation and replace it whole.
type Store struct {
	mu    sync.Mutex
	state player.State
	gen   uint64
	opts  Options
}

func New(initial player.State, opts Options) *Store {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	initial.Stats = opts.Engine.Stats(initial)
	return &Store{state: initial, opts: opts}
}

// Snapshot returns a copy of the committed document.
func (s *Store) Snapshot() player.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Generation counts committed replacements.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Transform applies fn. A rejected outcome leaves the document untouched. An
// accepted one has its stats re-derived and status evaluators applied before
// it is committed, journaled and queued for saving.
func (s *Store) Transform(ctx context.Context, op string, fn TransformFunc) player.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.opts.Now()
	out := fn(s.state, now)
	if !out.Accepted {
		if s.opts.Metrics != nil {
			s.opts.Metrics.RecordRejected(op, out.Reason)
		}
		out.State = s.state.Clone()
		return out
	}

	next, unlocked := s.settle(out.State, now)
	out.Events = append(out.Events, unlocked...)
	s.commit(ctx, next, out.Events)
	if s.opts.Metrics != nil {
		s.opts.Metrics.RecordAccepted(op)
	}
	out.State = next.Clone()
	return out
}

// Reset installs the document built by fresh, then writes it and the reset
// event in one transaction. fresh runs under the store lock, which is
// released before the transaction opens.
func (s *Store) Reset(ctx context.Context, fresh func(now time.Time) player.State) (player.State, error) {
	s.mu.Lock()
	now := s.opts.Now()
	next, unlocked := s.settle(fresh(now), now)
	s.state = next
	s.gen++
	snap := next.Clone()
	s.mu.Unlock()

	events := append([]player.DomainEvent{{Type: player.EventReset, OccurredAt: now, Payload: map[string]any{}}}, unlocked...)
	write := func(ctx context.Context) error {
		if s.opts.Saver != nil {
			if err := s.opts.Saver.SaveNow(ctx, snap); err != nil {
				return err
			}
		}
		if s.opts.Events != nil {
			return s.opts.Events.Append(ctx, s.opts.StreamID, events)
		}
		return nil
	}
	var err error
	if s.opts.Tx != nil {
		err = s.opts.Tx.RunInTx(ctx, write)
	} else {
		err = write(ctx)
	}
	// A background save that started before the reset may land after it.
	if s.opts.Saver != nil {
		s.opts.Saver.Request(s.Snapshot())
	}
	if s.opts.Metrics != nil {
		s.opts.Metrics.RecordAccepted("reset")
	}
	return snap, err
}

// Tick is the periodic pass: market refresh, stats and status evaluation.
func (s *Store) Tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.opts.Now()
	next, unlocked := s.settle(s.opts.Engine.RefreshMarket(s.state.Clone(), now), now)
	s.commit(ctx, next, unlocked)
}

// Save writes the committed document synchronously.
func (s *Store) Save(ctx context.Context) error {
	if s.opts.Saver == nil {
		return nil
	}
	return s.opts.Saver.SaveNow(ctx, s.Snapshot())
}

// RunAutosave ticks every interval until ctx ends. Each tick commits, which
// queues a save.
func (s *Store) RunAutosave(ctx context.Context, every time.Duration) error {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			if s.opts.Saver != nil {
				s.opts.Saver.Request(s.Snapshot())
			}
			return nil
		case <-t.C:
			s.Tick(ctx)
		}
	}
}

func (s *Store) settle(next player.State, now time.Time) (player.State, []player.DomainEvent) {
	next.Stats = s.opts.Engine.Stats(next)
	var unlocked []player.DomainEvent
	for _, ev := range s.opts.Evaluators {
		var evs []player.DomainEvent
		next, evs = player.ApplyStatusRecords(next, now, ev.Evaluate(next))
		unlocked = append(unlocked, evs...)
	}
	return next, unlocked
}

// commit must be called with mu held.
func (s *Store) commit(ctx context.Context, next player.State, events []player.DomainEvent) {
	s.state = next
	s.gen++
	if s.opts.Events != nil && len(events) > 0 {
		if err := s.opts.Events.Append(ctx, s.opts.StreamID, events); err != nil {
			s.opts.Logger.Printf("store: journal append failed: %v", err)
		}
	}
	if s.opts.Saver != nil {
		s.opts.Saver.Request(next.Clone())
	}
}
