package player

import "time"

const (
	CurrentSchemaVersion = 3

	StartingCoins = 500
	StartingAtk   = 20
	StartingDef   = 10
	StartingMaxHP = 100

	MaxEquippedRelics = 5
	CombatLogLimit    = 10

	StreakCap            = 50
	StreakStepMultiplier = 0.02

	BaseExperienceToNext = 100
	ExperienceGrowth     = 1.1

	WeaponLevelAtk      = 10
	ArmorLevelDef       = 5
	WeaponRelicLevelAtk = 22
	ArmorRelicLevelDef  = 15

	UpgradeCostGrowth = 1.5

	ResearchBaseCost     = 100
	ResearchCostPerLevel = 50

	MythicalCost = 5000

	ChestGemOnlyChance   = 0.2
	ChestEnchantChance   = 0.05
	ChestDoubleItemCost  = 400
	ChestBonusGemsMin    = 5
	ChestBonusGemsSpread = 10

	DropMinZone    = 10
	DropChance     = 0.3
	PremiumZone    = 50
	RevivalHPRatio = 0.5

	OfflineMinHours      = 0.1
	DefaultMaxOfflineHrs = 8
	OfflineCoinRate      = 10
	OfflineGemRate       = 1
	OfflineResearchBonus = 0.1

	GardenSeedCost       = 1000
	GardenWaterCost      = 500
	GardenWaterBaseHours = 24
	GardenInitialWater   = 24
	GardenGrowthPerHour  = 0.5
	GardenMaxGrowthCm    = 100
	GardenBonusPerCm     = 5

	DailyBaseCoins       = 50
	DailyCoinsPerDay     = 25
	DailyBaseGems        = 5
	DailyLegendaryDay    = 7
	DailyMythicalDay     = 14
	DailySpecialChest    = "Legendary Chest"
	DailySpecialMythical = "Mythical Item"

	PrestigeMinLevel    = 50
	PrestigeLevelDivide = 10

	ShinyMineChance      = 0.05
	ShinyExchangeRate    = 10
	DefaultMarketListing = 5
)

const (
	DailyRewardInterval = 24 * time.Hour
	MarketRefreshPeriod = 5 * time.Minute
)
