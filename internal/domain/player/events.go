package player

const (
	EventChestOpened       = "chest_opened"
	EventMythicalPurchased = "mythical_purchased"
	EventItemUpgraded      = "item_upgraded"
	EventItemSold          = "item_sold"
	EventItemsSold         = "items_sold"
	EventItemsUpgraded     = "items_upgraded"
	EventItemEquipped      = "item_equipped"
	EventItemUnequipped    = "item_unequipped"
	EventItemDiscarded     = "item_discarded"
	EventResearchUpgraded  = "research_upgraded"
	EventSeedPlanted       = "seed_planted"
	EventWaterBought       = "water_bought"
	EventRelicPurchased    = "relic_purchased"
	EventCombatStarted     = "combat_started"
	EventTurnResolved      = "turn_resolved"
	EventVictory           = "victory"
	EventDefeat            = "defeat"
	EventRevived           = "revived"
	EventLevelUp           = "level_up"
	EventPremiumUnlocked   = "premium_unlocked"
	EventSkillRolled       = "skill_rolled"
	EventOfflineClaimed    = "offline_claimed"
	EventDailyClaimed      = "daily_claimed"
	EventSkillUpgraded     = "skill_upgraded"
	EventPrestiged         = "prestiged"
	EventGemMined          = "gem_mined"
	EventShinyExchanged    = "shiny_exchanged"
	EventMarketRefreshed   = "market_refreshed"
	EventReset             = "reset"
	EventStatusUnlocked    = "status_unlocked"
)
