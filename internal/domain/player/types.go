package player

import "time"

type Currencies struct {
	Coins     int `json:"coins"`
	Gems      int `json:"gems"`
	ShinyGems int `json:"shiny_gems"`
}

// BaseStats are only changed by progression; Stats is derived from them.
type BaseStats struct {
	Atk   int `json:"atk"`
	Def   int `json:"def"`
	MaxHP int `json:"max_hp"`
}

type Stats struct {
	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	Atk   int `json:"atk"`
	Def   int `json:"def"`
}

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythical  Rarity = "mythical"
)

// Rarities is the order used by chest weight tables.
var Rarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary, RarityMythical}

type ItemKind string

const (
	KindWeapon ItemKind = "weapon"
	KindArmor  ItemKind = "armor"
	KindRelic  ItemKind = "relic"
)

type Weapon struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Rarity        Rarity `json:"rarity"`
	Level         int    `json:"level"`
	BaseAtk       int    `json:"base_atk"`
	Durability    int    `json:"durability"`
	MaxDurability int    `json:"max_durability"`
	UpgradeCost   int    `json:"upgrade_cost"`
	SellPrice     int    `json:"sell_price"`
	Enchanted     bool   `json:"enchanted,omitempty"`
}

type Armor struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Rarity        Rarity `json:"rarity"`
	Level         int    `json:"level"`
	BaseDef       int    `json:"base_def"`
	Durability    int    `json:"durability"`
	MaxDurability int    `json:"max_durability"`
	UpgradeCost   int    `json:"upgrade_cost"`
	SellPrice     int    `json:"sell_price"`
	Enchanted     bool   `json:"enchanted,omitempty"`
}

// Relic has no durability. Type gates which stat it contributes to.
type Relic struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Rarity      Rarity   `json:"rarity"`
	Type        ItemKind `json:"type"`
	Level       int      `json:"level"`
	BaseAtk     int      `json:"base_atk,omitempty"`
	BaseDef     int      `json:"base_def,omitempty"`
	Cost        int      `json:"cost"`
	UpgradeCost int      `json:"upgrade_cost"`
	SellPrice   int      `json:"sell_price"`
}

// Inventory references equipped items by id so upgrades and wear apply to a single copy.
type Inventory struct {
	Weapons          []Weapon `json:"weapons"`
	Armor            []Armor  `json:"armor"`
	Relics           []Relic  `json:"relics"`
	CurrentWeaponID  string   `json:"current_weapon_id,omitempty"`
	CurrentArmorID   string   `json:"current_armor_id,omitempty"`
	EquippedRelicIDs []string `json:"equipped_relic_ids"`
}

type Enemy struct {
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
	Atk   int    `json:"atk"`
	Def   int    `json:"def"`
	Zone  int    `json:"zone"`
}

type KnowledgeStreak struct {
	Current    int     `json:"current"`
	Best       int     `json:"best"`
	Multiplier float64 `json:"multiplier"`
}

type Research struct {
	Level      int `json:"level"`
	TotalSpent int `json:"total_spent"`
}

type Garden struct {
	Planted             bool       `json:"planted"`
	PlantedAt           *time.Time `json:"planted_at,omitempty"`
	LastWatered         *time.Time `json:"last_watered,omitempty"`
	LastTendedAt        *time.Time `json:"last_tended_at,omitempty"`
	WaterHoursRemaining float64    `json:"water_hours_remaining"`
	GrowthCm            float64    `json:"growth_cm"`
	TotalGrowthBonus    float64    `json:"total_growth_bonus"`
	SeedCost            int        `json:"seed_cost"`
	WaterCost           int        `json:"water_cost"`
	MaxGrowthCm         float64    `json:"max_growth_cm"`
}

type Market struct {
	Items       []Relic   `json:"items"`
	LastRefresh time.Time `json:"last_refresh"`
	NextRefresh time.Time `json:"next_refresh"`
}

type DailyReward struct {
	Day       int        `json:"day"`
	Coins     int        `json:"coins"`
	Gems      int        `json:"gems"`
	Special   string     `json:"special,omitempty"`
	Claimed   bool       `json:"claimed"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
}

type DailyRewards struct {
	LastClaimDate   *time.Time    `json:"last_claim_date,omitempty"`
	CurrentStreak   int           `json:"current_streak"`
	MaxStreak       int           `json:"max_streak"`
	AvailableReward *DailyReward  `json:"available_reward,omitempty"`
	History         []DailyReward `json:"history"`
}

type Progression struct {
	Level            int      `json:"level"`
	Experience       int      `json:"experience"`
	ExperienceToNext int      `json:"experience_to_next"`
	SkillPoints      int      `json:"skill_points"`
	UnlockedSkills   []string `json:"unlocked_skills"`
	PrestigeLevel    int      `json:"prestige_level"`
	PrestigePoints   int      `json:"prestige_points"`
}

type OfflineProgress struct {
	LastSaveTime    time.Time `json:"last_save_time"`
	OfflineCoins    int       `json:"offline_coins"`
	OfflineGems     int       `json:"offline_gems"`
	OfflineSeconds  float64   `json:"offline_seconds"`
	MaxOfflineHours float64   `json:"max_offline_hours"`
}

// MenuSkill is a timed buff. Expiry is wall-clock, it does not pause.
type MenuSkill struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Hours       float64   `json:"hours"`
	ActivatedAt time.Time `json:"activated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type Skills struct {
	ActiveMenuSkill *MenuSkill `json:"active_menu_skill,omitempty"`
	LastRollTime    *time.Time `json:"last_roll_time,omitempty"`
}

type CategoryAccuracy struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Statistics counters only ever grow.
type Statistics struct {
	TotalQuestionsAnswered int                         `json:"total_questions_answered"`
	CorrectAnswers         int                         `json:"correct_answers"`
	AccuracyByCategory     map[string]CategoryAccuracy `json:"accuracy_by_category"`
	ZonesReached           int                         `json:"zones_reached"`
	ItemsCollected         int                         `json:"items_collected"`
	CoinsEarned            int                         `json:"coins_earned"`
	GemsEarned             int                         `json:"gems_earned"`
	ShinyGemsEarned        int                         `json:"shiny_gems_earned"`
	ChestsOpened           int                         `json:"chests_opened"`
	TotalDeaths            int                         `json:"total_deaths"`
	TotalVictories         int                         `json:"total_victories"`
	LongestStreak          int                         `json:"longest_streak"`
	TotalDamageDealt       int                         `json:"total_damage_dealt"`
	TotalDamageTaken       int                         `json:"total_damage_taken"`
	ItemsUpgraded          int                         `json:"items_upgraded"`
	ItemsSold              int                         `json:"items_sold"`
	TotalResearchSpent     int                         `json:"total_research_spent"`
	Revivals               int                         `json:"revivals"`
	SkillsRolled           int                         `json:"skills_rolled"`
	GemsMined              int                         `json:"gems_mined"`
	ShinyGemsMined         int                         `json:"shiny_gems_mined"`
}

type CollectionBook struct {
	Weapons           map[string]bool `json:"weapons"`
	Armor             map[string]bool `json:"armor"`
	TotalWeaponsFound int             `json:"total_weapons_found"`
	TotalArmorFound   int             `json:"total_armor_found"`
	RarityStats       map[Rarity]int  `json:"rarity_stats"`
}

type StatusKind string

const (
	StatusAchievement StatusKind = "achievement"
	StatusTag         StatusKind = "tag"
)

// StatusRecord is produced by the achievement and tag evaluators.
type StatusRecord struct {
	ID          string     `json:"id"`
	Kind        StatusKind `json:"kind"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	RewardCoins int        `json:"reward_coins,omitempty"`
	RewardGems  int        `json:"reward_gems,omitempty"`
	UnlockedAt  time.Time  `json:"unlocked_at"`
}

// State is the whole player document. It is replaced, never patched, by transforms.
type State struct {
	SchemaVersion   int                     `json:"schema_version"`
	Currencies      Currencies              `json:"currencies"`
	Zone            int                     `json:"zone"`
	Premium         bool                    `json:"premium"`
	Base            BaseStats               `json:"base_stats"`
	Stats           Stats                   `json:"stats"`
	Inventory       Inventory               `json:"inventory"`
	CurrentEnemy    *Enemy                  `json:"current_enemy,omitempty"`
	InCombat        bool                    `json:"in_combat"`
	CombatLog       []string                `json:"combat_log"`
	HasUsedRevival  bool                    `json:"has_used_revival"`
	KnowledgeStreak KnowledgeStreak         `json:"knowledge_streak"`
	Research        Research                `json:"research"`
	Garden          Garden                  `json:"garden"`
	Market          Market                  `json:"market"`
	DailyRewards    DailyRewards            `json:"daily_rewards"`
	Progression     Progression             `json:"progression"`
	Offline         OfflineProgress         `json:"offline_progress"`
	Skills          Skills                  `json:"skills"`
	Statistics      Statistics              `json:"statistics"`
	CollectionBook  CollectionBook          `json:"collection_book"`
	Achievements    map[string]StatusRecord `json:"achievements"`
	Tags            map[string]StatusRecord `json:"tags"`
}
