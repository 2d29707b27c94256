package store

import (
	"context"
	"log"
	"time"

	"hugoland/internal/app/ports"
	"hugoland/internal/domain/player"
)

// Persister writes one document. persist.Codec satisfies it.
type Persister interface {
	Save(ctx context.Context, s player.State) (player.State, error)
}

const flushTimeout = 5 * time.Second

// Saver writes documents in the background. Requests coalesce: only the
// newest pending document is written, and Request never blocks.
type Saver struct {
	persister Persister
	pending   chan player.State
	logger    *log.Logger
	metrics   ports.TransformMetrics
}

func NewSaver(p Persister, logger *log.Logger, metrics ports.TransformMetrics) *Saver {
	if logger == nil {
		logger = log.Default()
	}
	return &Saver{
		persister: p,
		pending:   make(chan player.State, 1),
		logger:    logger,
		metrics:   metrics,
	}
}

// Request queues s for writing, replacing any document still waiting.
func (s *Saver) Request(st player.State) {
	for {
		select {
		case s.pending <- st:
			return
		default:
		}
		select {
		case <-s.pending:
		default:
		}
	}
}

// Run writes queued documents until ctx ends, then flushes the last one.
func (s *Saver) Run(ctx context.Context) error {
	for {
		select {
		case st := <-s.pending:
			s.SaveNow(ctx, st)
		case <-ctx.Done():
			select {
			case st := <-s.pending:
				flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
				s.SaveNow(flushCtx, st)
				cancel()
			default:
			}
			return nil
		}
	}
}

// SaveNow writes synchronously. Failures are logged and counted; in-memory
// state is never rolled back.
func (s *Saver) SaveNow(ctx context.Context, st player.State) error {
	if _, err := s.persister.Save(ctx, st); err != nil {
		s.logger.Printf("store: save failed: %v", err)
		if s.metrics != nil {
			s.metrics.RecordSaveFailure()
		}
		return err
	}
	return nil
}
