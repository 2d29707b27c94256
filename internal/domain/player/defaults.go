package player

import "time"

// NewState builds a fresh document for a first run at now.
func NewState(now time.Time) State {
	s := State{
		SchemaVersion: CurrentSchemaVersion,
		Currencies:    Currencies{Coins: StartingCoins},
		Zone:          1,
		Base:          BaseStats{Atk: StartingAtk, Def: StartingDef, MaxHP: StartingMaxHP},
		Stats:         Stats{HP: StartingMaxHP, MaxHP: StartingMaxHP, Atk: StartingAtk, Def: StartingDef},
		Inventory: Inventory{
			Weapons:          []Weapon{},
			Armor:            []Armor{},
			Relics:           []Relic{},
			EquippedRelicIDs: []string{},
		},
		CombatLog:       []string{},
		KnowledgeStreak: KnowledgeStreak{Multiplier: 1},
		Garden: Garden{
			SeedCost:    GardenSeedCost,
			WaterCost:   GardenWaterCost,
			MaxGrowthCm: GardenMaxGrowthCm,
		},
		Market: Market{
			Items:       []Relic{},
			LastRefresh: now,
			NextRefresh: now.Add(MarketRefreshPeriod),
		},
		DailyRewards: DailyRewards{History: []DailyReward{}},
		Progression: Progression{
			Level:            1,
			ExperienceToNext: BaseExperienceToNext,
			UnlockedSkills:   []string{},
		},
		Offline: OfflineProgress{
			LastSaveTime:    now,
			MaxOfflineHours: DefaultMaxOfflineHrs,
		},
		Statistics: Statistics{
			ZonesReached:       1,
			AccuracyByCategory: map[string]CategoryAccuracy{},
		},
		CollectionBook: CollectionBook{
			Weapons:     map[string]bool{},
			Armor:       map[string]bool{},
			RarityStats: map[Rarity]int{},
		},
		Achievements: map[string]StatusRecord{},
		Tags:         map[string]StatusRecord{},
	}
	for _, r := range Rarities {
		s.CollectionBook.RarityStats[r] = 0
	}
	return s
}
