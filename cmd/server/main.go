package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hugoland/internal/adapter/content/standard"
	httpadapter "hugoland/internal/adapter/http"
	metricsinmem "hugoland/internal/adapter/metrics/inmemory"
	celrules "hugoland/internal/adapter/rules/cel"
	"hugoland/internal/app/game"
	"hugoland/internal/app/persist"
	"hugoland/internal/app/ports"
	"hugoland/internal/app/replay"
	"hugoland/internal/app/status"
	"hugoland/internal/app/store"
	"hugoland/internal/backend"
	"hugoland/internal/config"
	"hugoland/internal/domain/catalog"
	"hugoland/internal/domain/player"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log.Default()); err != nil {
		log.Fatalf("hugoland: %v", err)
	}
}

type application struct {
	handler httpadapter.Handler
	store   *store.Store
	saver   *store.Saver
	backend backend.Backend
}

func build(ctx context.Context, cfg config.Config, logger *log.Logger) (*application, error) {
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	rules, err := celrules.Load(cfg.RulesPath, logger)
	if err != nil {
		return nil, err
	}
	be, err := backend.Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	rng := newRand(cfg.Seed)
	eng := player.Engine{
		Catalog: cat,
		Content: standard.New(cat, rng),
		Rand:    rng,
		NewID:   uuid.NewString,
	}
	codec := persist.Codec{Store: be.KV, Key: cfg.StorageKey, Logger: logger, Now: time.Now}
	kpi := metricsinmem.NewRecorder()
	saver := store.NewSaver(codec, logger, kpi)

	initial := game.Boot(ctx, codec, eng, time.Now(), logger)
	st := store.New(initial, store.Options{
		Engine:     eng,
		Evaluators: []ports.StatusEvaluator{rules},
		Events:     be.Events,
		StreamID:   cfg.StorageKey,
		Metrics:    kpi,
		Saver:      saver,
		Tx:         be.Tx,
		Logger:     logger,
		Now:        time.Now,
	})

	return &application{
		handler: httpadapter.Handler{
			GameUC:      game.UseCase{Store: st, Engine: eng, Now: time.Now},
			StatusUC:    status.UseCase{Store: st, Engine: eng, Now: time.Now},
			ReplayUC:    replay.UseCase{Events: be.Events, StreamID: cfg.StorageKey},
			Catalog:     cat,
			KPI:         kpi,
			AllowOrigin: cfg.AllowOrigin,
		},
		store:   st,
		saver:   saver,
		backend: be,
	}, nil
}

func run(ctx context.Context, cfg config.Config, logger *log.Logger) error {
	a, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.backend.Close()

	s := server.Default(server.WithHostPorts(cfg.Addr))
	a.handler.RegisterRoutes(s)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return a.saver.Run(gctx) })
	g.Go(func() error { return a.store.RunAutosave(gctx, cfg.AutosaveInterval) })
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		logger.Printf("hugoland server listening on %s (storage: %s)", cfg.Addr, cfg.Storage)
		return s.Run()
	})

	err = g.Wait()
	if saveErr := a.store.Save(context.Background()); saveErr != nil {
		err = errors.Join(err, fmt.Errorf("final save: %w", saveErr))
	}
	return err
}

// newRand seeds from cfg when set so a session can be replayed.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
