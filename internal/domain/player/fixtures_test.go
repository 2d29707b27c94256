package player

import (
	"fmt"
	"testing"
	"time"

	"hugoland/internal/domain/catalog"
)

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// scriptedRand replays fixed draws. Once exhausted, Float64 returns 0.99 so
// every chance check fails, and IntN returns 0.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

type stubContent struct {
	seq     int
	weights []float64
	enemy   Enemy
}

var _ Generator = (*stubContent)(nil)

func (c *stubContent) next(prefix string) string {
	c.seq++
	return fmt.Sprintf("%s-%d", prefix, c.seq)
}

func (c *stubContent) Weapon(premium bool, rarity Rarity, enchanted bool) Weapon {
	if rarity == "" {
		rarity = RarityCommon
	}
	id := c.next("w")
	return Weapon{
		ID: id, Name: "Blade " + id, Rarity: rarity, Level: 1, BaseAtk: 10,
		Durability: 100, MaxDurability: 100, UpgradeCost: 10, SellPrice: 20, Enchanted: enchanted,
	}
}

func (c *stubContent) Armor(premium bool, rarity Rarity, enchanted bool) Armor {
	if rarity == "" {
		rarity = RarityCommon
	}
	id := c.next("a")
	return Armor{
		ID: id, Name: "Plate " + id, Rarity: rarity, Level: 1, BaseDef: 8,
		Durability: 100, MaxDurability: 100, UpgradeCost: 10, SellPrice: 15, Enchanted: enchanted,
	}
}

func (c *stubContent) Enemy(zone int) Enemy {
	if c.enemy.Name != "" {
		e := c.enemy
		e.Zone = zone
		return e
	}
	return Enemy{Name: "Goblin", HP: 50, MaxHP: 50, Atk: 12, Def: 5, Zone: zone}
}

func (c *stubContent) Relic(premium bool) Relic {
	id := c.next("r")
	return Relic{ID: id, Name: "Relic " + id, Rarity: RarityLegendary, Type: KindWeapon, Level: 1, BaseAtk: 30, Cost: 40, UpgradeCost: 20, SellPrice: 25}
}

func (c *stubContent) ChestRarityWeights(cost int) []float64 {
	if c.weights != nil {
		return c.weights
	}
	return []float64{100, 0, 0, 0, 0}
}

func newTestEngine(r Rand) (Engine, *stubContent) {
	content := &stubContent{}
	if r == nil {
		r = &scriptedRand{}
	}
	return Engine{Catalog: catalog.Default(), Content: content, Rand: r}, content
}

func inCombat(s State, enemy Enemy) State {
	s.InCombat = true
	s.CurrentEnemy = &enemy
	return s
}

func mustAccept(t *testing.T, out Outcome) State {
	t.Helper()
	if !out.Accepted {
		t.Fatalf("expected accepted outcome, got reason %q", out.Reason)
	}
	return out.State
}

func mustReject(t *testing.T, out Outcome, want RejectReason) {
	t.Helper()
	if out.Accepted {
		t.Fatalf("expected rejection %q, got accepted", want)
	}
	if out.Reason != want {
		t.Fatalf("expected reason %q, got %q", want, out.Reason)
	}
}
