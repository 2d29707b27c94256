package main

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"hugoland/internal/config"
)

func TestNewRand_SeedIsDeterministic(t *testing.T) {
	a, b := newRand(42), newRand(42)
	for range 10 {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("same seed should produce the same sequence")
		}
	}
}

func TestBuild_BootsFreshDocumentOnMemoryStorage(t *testing.T) {
	cfg := config.Config{
		Storage:          config.StorageMemory,
		StorageKey:       "test-save",
		AutosaveInterval: time.Second,
		Seed:             7,
	}
	a, err := build(context.Background(), cfg, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer a.backend.Close()

	snap := a.store.Snapshot()
	if snap.Zone != 1 || snap.InCombat {
		t.Fatalf("expected idle zone 1 document, got zone=%d in_combat=%v", snap.Zone, snap.InCombat)
	}
	if len(snap.Market.Items) == 0 {
		t.Fatalf("expected boot to stock the market")
	}
	if err := a.store.Save(context.Background()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := a.backend.KV.GetItem(context.Background(), "test-save"); err != nil {
		t.Fatalf("expected saved document under key: %v", err)
	}
}

func TestBuild_RejectsMissingCatalog(t *testing.T) {
	cfg := config.Config{Storage: config.StorageMemory, StorageKey: "k", CatalogPath: "/nonexistent/catalog.yaml"}
	if _, err := build(context.Background(), cfg, log.New(io.Discard, "", 0)); err == nil {
		t.Fatalf("expected catalog error")
	}
}
