// Package standard is the stock content table: gear, enemies and market
// relics scaled by rarity and zone.
package standard

import (
	"fmt"
	"math"

	"hugoland/internal/domain/catalog"
	"hugoland/internal/domain/player"

	"github.com/google/uuid"
)

type rarityRow struct {
	power       int
	durability  int
	upgradeCost int
	sellPrice   int
	relicCost   int
	adjective   string
}

var rarityTable = map[player.Rarity]rarityRow{
	player.RarityCommon:    {power: 10, durability: 100, upgradeCost: 10, sellPrice: 5, relicCost: 25, adjective: "Worn"},
	player.RarityRare:      {power: 20, durability: 150, upgradeCost: 25, sellPrice: 15, relicCost: 50, adjective: "Polished"},
	player.RarityEpic:      {power: 35, durability: 200, upgradeCost: 50, sellPrice: 35, relicCost: 80, adjective: "Runed"},
	player.RarityLegendary: {power: 60, durability: 300, upgradeCost: 100, sellPrice: 75, relicCost: 120, adjective: "Ancient"},
	player.RarityMythical:  {power: 100, durability: 500, upgradeCost: 250, sellPrice: 200, relicCost: 200, adjective: "Celestial"},
}

// Gear drawn without a rarity uses these weights, ordered like player.Rarities.
var (
	dropWeights        = []float64{50, 30, 15, 4, 1}
	premiumDropWeights = []float64{20, 35, 28, 13, 4}
)

var (
	weaponNames = []string{"Sword", "Axe", "Spear", "Bow", "Staff", "Dagger", "Hammer"}
	armorNames  = []string{"Helmet", "Chestplate", "Shield", "Gauntlets", "Greaves", "Cloak"}
	relicNames  = []string{"Yojef Idol", "Starfall Shard", "Ember Sigil", "Tidal Charm", "Void Lantern", "Sage Feather"}
	enemyNames  = []string{"Goblin", "Skeleton", "Slime", "Wolf", "Bandit", "Troll", "Wraith", "Golem", "Drake"}
)

const (
	premiumBonus    = 1.25
	enchantBonus    = 1.5
	armorRatio      = 0.8
	relicPremiumCut = 0.5
)

// Generator implements player.Generator. Rand must not be shared with a
// goroutine that is not serialized with the engine.
type Generator struct {
	Catalog catalog.Catalog
	Rand    player.Rand
	NewID   func() string
}

var _ player.Generator = Generator{}

func New(c catalog.Catalog, r player.Rand) Generator {
	return Generator{Catalog: c, Rand: r, NewID: uuid.NewString}
}

func (g Generator) Weapon(premium bool, rarity player.Rarity, enchanted bool) player.Weapon {
	rarity = g.rarity(premium, rarity)
	row := rarityTable[rarity]
	name := fmt.Sprintf("%s %s", row.adjective, pick(g.Rand, weaponNames))
	if enchanted {
		name = "Enchanted " + name
	}
	return player.Weapon{
		ID:            g.id(),
		Name:          name,
		Rarity:        rarity,
		Level:         1,
		BaseAtk:       scale(row.power, premium, enchanted),
		Durability:    row.durability,
		MaxDurability: row.durability,
		UpgradeCost:   row.upgradeCost,
		SellPrice:     row.sellPrice,
		Enchanted:     enchanted,
	}
}

func (g Generator) Armor(premium bool, rarity player.Rarity, enchanted bool) player.Armor {
	rarity = g.rarity(premium, rarity)
	row := rarityTable[rarity]
	name := fmt.Sprintf("%s %s", row.adjective, pick(g.Rand, armorNames))
	if enchanted {
		name = "Enchanted " + name
	}
	return player.Armor{
		ID:            g.id(),
		Name:          name,
		Rarity:        rarity,
		Level:         1,
		BaseDef:       int(math.Floor(float64(scale(row.power, premium, enchanted)) * armorRatio)),
		Durability:    row.durability,
		MaxDurability: row.durability,
		UpgradeCost:   row.upgradeCost,
		SellPrice:     row.sellPrice,
		Enchanted:     enchanted,
	}
}

// Enemy grows linearly with zone. Every tenth zone fields a boss.
func (g Generator) Enemy(zone int) player.Enemy {
	zone = max(zone, 1)
	hp := 50 + zone*15
	atk := 8 + zone*3
	def := 2 + zone*2
	name := pick(g.Rand, enemyNames)
	if zone%10 == 0 {
		hp *= 2
		atk = atk * 3 / 2
		name = "Boss " + name
	}
	return player.Enemy{Name: name, HP: hp, MaxHP: hp, Atk: atk, Def: def, Zone: zone}
}

// Relic draws a legendary or mythical market listing. Premium players see
// mythical relics more often.
func (g Generator) Relic(premium bool) player.Relic {
	rarity := player.RarityLegendary
	mythicalChance := 0.2
	if premium {
		mythicalChance = relicPremiumCut
	}
	if g.Rand.Float64() < mythicalChance {
		rarity = player.RarityMythical
	}
	row := rarityTable[rarity]

	r := player.Relic{
		ID:          g.id(),
		Name:        pick(g.Rand, relicNames),
		Rarity:      rarity,
		Level:       1,
		Cost:        row.relicCost,
		UpgradeCost: row.relicCost / 2,
		SellPrice:   row.relicCost * 5,
	}
	if g.Rand.Float64() < 0.5 {
		r.Type = player.KindWeapon
		r.BaseAtk = row.power
	} else {
		r.Type = player.KindArmor
		r.BaseDef = int(math.Floor(float64(row.power) * armorRatio))
	}
	return r
}

func (g Generator) ChestRarityWeights(cost int) []float64 {
	return g.Catalog.Tier(cost).Weights
}

func (g Generator) rarity(premium bool, r player.Rarity) player.Rarity {
	if _, ok := rarityTable[r]; ok {
		return r
	}
	weights := dropWeights
	if premium {
		weights = premiumDropWeights
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	roll := g.Rand.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if roll < cum {
			return player.Rarities[i]
		}
	}
	return player.RarityCommon
}

func (g Generator) id() string {
	if g.NewID == nil {
		return uuid.NewString()
	}
	return g.NewID()
}

func scale(base int, premium, enchanted bool) int {
	v := float64(base)
	if premium {
		v *= premiumBonus
	}
	if enchanted {
		v *= enchantBonus
	}
	return int(math.Floor(v))
}

func pick(r player.Rand, names []string) string {
	return names[r.IntN(len(names))]
}
