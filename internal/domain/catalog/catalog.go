// Package catalog holds the static game data that drives the engine: the
// menu skill table, chest rarity weights, the skill tree and research
// bonuses. The data is YAML, loaded once at process start.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type MenuSkill struct {
	Type        string  `yaml:"type" json:"type"`
	Name        string  `yaml:"name" json:"name"`
	Description string  `yaml:"description" json:"description"`
	Hours       float64 `yaml:"hours" json:"hours"`
}

// ChestTier weights are ordered common, rare, epic, legendary, mythical.
type ChestTier struct {
	Cost    int       `yaml:"cost" json:"cost"`
	Weights []float64 `yaml:"weights" json:"weights"`
	GemOnly int       `yaml:"gem_only" json:"gem_only"`
}

type SkillNode struct {
	ID       string `yaml:"id" json:"id"`
	Cost     int    `yaml:"cost" json:"cost"`
	MaxLevel int    `yaml:"max_level" json:"max_level"`
}

// ResearchBonus is the percentage added per research level.
type ResearchBonus struct {
	AtkPercent float64 `yaml:"atk_percent" json:"atk_percent"`
	DefPercent float64 `yaml:"def_percent" json:"def_percent"`
	HPPercent  float64 `yaml:"hp_percent" json:"hp_percent"`
}

type Catalog struct {
	SkillRollCost  int           `yaml:"skill_roll_cost" json:"skill_roll_cost"`
	MenuSkills     []MenuSkill   `yaml:"menu_skills" json:"menu_skills"`
	ChestTiers     []ChestTier   `yaml:"chest_tiers" json:"chest_tiers"`
	DefaultGemOnly int           `yaml:"default_gem_only" json:"default_gem_only"`
	SkillTree      []SkillNode   `yaml:"skill_tree" json:"skill_tree"`
	Research       ResearchBonus `yaml:"research_bonus" json:"research_bonus"`
	MarketSize     int           `yaml:"market_size" json:"market_size"`
}

// Default returns the embedded catalog.
func Default() Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Parse decodes b over the embedded defaults, so a partial file only
// overrides the sections it names.
func Parse(b []byte) (Catalog, error) {
	var c Catalog
	if len(defaultYAML) > 0 {
		if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
			return Catalog{}, fmt.Errorf("decode default catalog: %w", err)
		}
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Load reads a catalog file. An empty path yields the embedded default.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(b)
}

func (c Catalog) Validate() error {
	if c.SkillRollCost <= 0 {
		return fmt.Errorf("%w: skill_roll_cost must be positive", ErrInvalidCatalog)
	}
	if len(c.MenuSkills) == 0 {
		return fmt.Errorf("%w: menu_skills is empty", ErrInvalidCatalog)
	}
	seen := map[string]bool{}
	for _, s := range c.MenuSkills {
		if s.Type == "" || s.Hours <= 0 {
			return fmt.Errorf("%w: menu skill %q needs a type and positive hours", ErrInvalidCatalog, s.Type)
		}
		if seen[s.Type] {
			return fmt.Errorf("%w: duplicate menu skill %q", ErrInvalidCatalog, s.Type)
		}
		seen[s.Type] = true
	}
	if len(c.ChestTiers) == 0 {
		return fmt.Errorf("%w: chest_tiers is empty", ErrInvalidCatalog)
	}
	for _, t := range c.ChestTiers {
		if len(t.Weights) != 5 {
			return fmt.Errorf("%w: chest tier %d needs 5 weights", ErrInvalidCatalog, t.Cost)
		}
	}
	for _, n := range c.SkillTree {
		if n.ID == "" || n.Cost <= 0 || n.MaxLevel <= 0 {
			return fmt.Errorf("%w: skill node %q", ErrInvalidCatalog, n.ID)
		}
	}
	return nil
}

// Tier returns the tier priced exactly at cost, else the most expensive
// tier not above cost, else the cheapest tier.
func (c Catalog) Tier(cost int) ChestTier {
	var best *ChestTier
	for i := range c.ChestTiers {
		t := &c.ChestTiers[i]
		if t.Cost == cost {
			return *t
		}
		if t.Cost <= cost && (best == nil || t.Cost > best.Cost) {
			best = t
		}
	}
	if best != nil {
		return *best
	}
	cheapest := c.ChestTiers[0]
	for _, t := range c.ChestTiers[1:] {
		if t.Cost < cheapest.Cost {
			cheapest = t
		}
	}
	return cheapest
}

// GemOnlyAmount is keyed on the exact chest price.
func (c Catalog) GemOnlyAmount(cost int) int {
	for _, t := range c.ChestTiers {
		if t.Cost == cost && t.GemOnly > 0 {
			return t.GemOnly
		}
	}
	return c.DefaultGemOnly
}

func (c Catalog) SkillNode(id string) (SkillNode, bool) {
	for _, n := range c.SkillTree {
		if n.ID == id {
			return n, true
		}
	}
	return SkillNode{}, false
}

func (c Catalog) MenuSkill(kind string) (MenuSkill, bool) {
	for _, s := range c.MenuSkills {
		if s.Type == kind {
			return s, true
		}
	}
	return MenuSkill{}, false
}
