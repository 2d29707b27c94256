package player

import "slices"

// Normalize repairs a decoded document so every invariant holds again: empty
// collections instead of nil, non-negative balances, a bounded log, equipment
// that refers to owned items, and derived fields recomputed. It reuses the
// collections of s, so callers pass a document they own.
func Normalize(s State) State {
	s.SchemaVersion = max(s.SchemaVersion, CurrentSchemaVersion)
	s.Currencies.Coins = max(0, s.Currencies.Coins)
	s.Currencies.Gems = max(0, s.Currencies.Gems)
	s.Currencies.ShinyGems = max(0, s.Currencies.ShinyGems)
	s.Zone = max(1, s.Zone)
	s.Base.MaxHP = max(1, s.Base.MaxHP)

	inv := &s.Inventory
	inv.Weapons = orEmpty(inv.Weapons)
	inv.Armor = orEmpty(inv.Armor)
	inv.Relics = orEmpty(inv.Relics)
	for i := range inv.Weapons {
		w := &inv.Weapons[i]
		w.MaxDurability = max(0, w.MaxDurability)
		w.Durability = clampInt(w.Durability, 0, w.MaxDurability)
		w.Level = max(1, w.Level)
	}
	for i := range inv.Armor {
		a := &inv.Armor[i]
		a.MaxDurability = max(0, a.MaxDurability)
		a.Durability = clampInt(a.Durability, 0, a.MaxDurability)
		a.Level = max(1, a.Level)
	}
	if inv.CurrentWeaponID != "" && s.weaponIndex(inv.CurrentWeaponID) < 0 {
		inv.CurrentWeaponID = ""
	}
	if inv.CurrentArmorID != "" && s.armorIndex(inv.CurrentArmorID) < 0 {
		inv.CurrentArmorID = ""
	}
	equipped := make([]string, 0, MaxEquippedRelics)
	for _, id := range inv.EquippedRelicIDs {
		if len(equipped) == MaxEquippedRelics {
			break
		}
		if s.relicIndex(id) >= 0 && !slices.Contains(equipped, id) {
			equipped = append(equipped, id)
		}
	}
	inv.EquippedRelicIDs = equipped

	if s.CurrentEnemy == nil {
		s.InCombat = false
	}
	s.CombatLog = orEmpty(s.CombatLog)
	if n := len(s.CombatLog); n > CombatLogLimit {
		s.CombatLog = slices.Clone(s.CombatLog[n-CombatLogLimit:])
	}

	k := &s.KnowledgeStreak
	k.Current = max(0, k.Current)
	k.Best = max(k.Best, k.Current)
	k.Multiplier = StreakMultiplier(k.Current)

	s.Research.Level = max(0, s.Research.Level)

	g := &s.Garden
	if g.MaxGrowthCm <= 0 {
		g.MaxGrowthCm = GardenMaxGrowthCm
	}
	g.WaterHoursRemaining = max(0, g.WaterHoursRemaining)
	g.GrowthCm = min(max(0, g.GrowthCm), g.MaxGrowthCm)
	g.TotalGrowthBonus = g.GrowthCm * GardenBonusPerCm
	if g.SeedCost <= 0 {
		g.SeedCost = GardenSeedCost
	}
	if g.WaterCost <= 0 {
		g.WaterCost = GardenWaterCost
	}

	s.Market.Items = orEmpty(s.Market.Items)
	if s.Market.NextRefresh.IsZero() {
		s.Market.NextRefresh = s.Market.LastRefresh.Add(MarketRefreshPeriod)
	}

	s.DailyRewards.History = orEmpty(s.DailyRewards.History)

	p := &s.Progression
	p.Level = max(1, p.Level)
	if p.ExperienceToNext <= 0 {
		p.ExperienceToNext = ExperienceToNext(p.Level)
	}
	p.UnlockedSkills = orEmpty(p.UnlockedSkills)

	if s.Offline.MaxOfflineHours <= 0 {
		s.Offline.MaxOfflineHours = DefaultMaxOfflineHrs
	}

	st := &s.Statistics
	if st.AccuracyByCategory == nil {
		st.AccuracyByCategory = map[string]CategoryAccuracy{}
	}
	st.ZonesReached = max(st.ZonesReached, s.Zone)
	st.LongestStreak = max(st.LongestStreak, k.Best)

	cb := &s.CollectionBook
	if cb.Weapons == nil {
		cb.Weapons = map[string]bool{}
	}
	if cb.Armor == nil {
		cb.Armor = map[string]bool{}
	}
	if cb.RarityStats == nil {
		cb.RarityStats = map[Rarity]int{}
	}
	for _, r := range Rarities {
		if _, ok := cb.RarityStats[r]; !ok {
			cb.RarityStats[r] = 0
		}
	}
	if s.Achievements == nil {
		s.Achievements = map[string]StatusRecord{}
	}
	if s.Tags == nil {
		s.Tags = map[string]StatusRecord{}
	}
	return s
}

func orEmpty[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
