package player

import (
	"math"

	"hugoland/internal/domain/catalog"
)

// EffectiveStats composes base stats, equipment scaled by durability,
// relics, the research bonus and the garden bonus, in that order.
func EffectiveStats(s State, rb catalog.ResearchBonus) Stats {
	atk := s.Base.Atk
	def := s.Base.Def
	maxHP := s.Base.MaxHP

	if w, ok := s.EquippedWeapon(); ok {
		atk += durabilityScaled(w.BaseAtk+(w.Level-1)*WeaponLevelAtk, w.Durability, w.MaxDurability)
	}
	if a, ok := s.EquippedArmor(); ok {
		def += durabilityScaled(a.BaseDef+(a.Level-1)*ArmorLevelDef, a.Durability, a.MaxDurability)
	}
	for _, r := range s.EquippedRelics() {
		switch {
		case r.Type == KindWeapon && r.BaseAtk > 0:
			atk += r.BaseAtk + (r.Level-1)*WeaponRelicLevelAtk
		case r.Type == KindArmor && r.BaseDef > 0:
			def += r.BaseDef + (r.Level-1)*ArmorRelicLevelDef
		}
	}

	level := float64(s.Research.Level)
	atk += percentOf(atk, level*rb.AtkPercent)
	def += percentOf(def, level*rb.DefPercent)
	maxHP += percentOf(maxHP, level*rb.HPPercent)

	garden := s.Garden.TotalGrowthBonus
	atk += percentOf(atk, garden)
	def += percentOf(def, garden)
	maxHP += percentOf(maxHP, garden)

	if maxHP < 1 {
		maxHP = 1
	}
	hp := s.Stats.HP
	if hp > maxHP {
		hp = maxHP
	}
	if hp < 0 {
		hp = 0
	}
	return Stats{HP: hp, MaxHP: maxHP, Atk: atk, Def: def}
}

// Stats recomputes the derived stats with the engine's research table.
func (e Engine) Stats(s State) Stats {
	return EffectiveStats(s, e.Catalog.Research)
}

func durabilityScaled(value, durability, maxDurability int) int {
	if maxDurability <= 0 {
		return 0
	}
	durability = clampInt(durability, 0, maxDurability)
	return int(math.Floor(float64(value) * float64(durability) / float64(maxDurability)))
}

func percentOf(v int, pct float64) int {
	if pct == 0 {
		return 0
	}
	return int(math.Floor(float64(v) * pct / 100))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
