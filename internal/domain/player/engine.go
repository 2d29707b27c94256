package player

import (
	"fmt"
	"time"

	"hugoland/internal/domain/catalog"
)

// Rand is the subset of *math/rand/v2.Rand the engine draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Generator produces content. Balancing tables live behind it. An empty
// rarity lets the generator pick one.
type Generator interface {
	Weapon(premium bool, rarity Rarity, enchanted bool) Weapon
	Armor(premium bool, rarity Rarity, enchanted bool) Armor
	Enemy(zone int) Enemy
	Relic(premium bool) Relic
	ChestRarityWeights(cost int) []float64
}

// Engine carries the collaborators the transforms need. Transforms never
// mutate the State they receive.
type Engine struct {
	Catalog catalog.Catalog
	Content Generator
	Rand    Rand
	NewID   func() string
}

func (e Engine) newID(prefix string, now time.Time) string {
	if e.NewID != nil {
		return e.NewID()
	}
	return fmt.Sprintf("%s-%d", prefix, now.UnixNano())
}

func (e Engine) chance(p float64) bool {
	return e.Rand.Float64() < p
}
