package status

import (
	"time"

	"hugoland/internal/domain/player"
)

type Response struct {
	State          player.State        `json:"state"`
	Stats          player.Stats        `json:"stats"`
	Generation     uint64              `json:"generation"`
	ActiveBuff     *ActiveBuff         `json:"active_buff,omitempty"`
	PendingOffline PendingOffline      `json:"pending_offline"`
	PendingDaily   *player.DailyReward `json:"pending_daily,omitempty"`
	NextMarketIn   int                 `json:"next_market_refresh_seconds"`
	UpgradeCosts   UpgradeCosts        `json:"upgrade_costs"`
	SkillTree      []SkillTreeNode     `json:"skill_tree"`
	ServerTime     time.Time           `json:"server_time"`
}

type ActiveBuff struct {
	Type             string  `json:"type"`
	Name             string  `json:"name"`
	Description      string  `json:"description,omitempty"`
	TotalHours       float64 `json:"total_hours"`
	RemainingSeconds float64 `json:"remaining_seconds"`
}

type SkillTreeNode struct {
	ID         string `json:"id"`
	Rank       int    `json:"rank"`
	MaxLevel   int    `json:"max_level"`
	Cost       int    `json:"cost"`
	Unlocked   bool   `json:"unlocked"`
	Affordable bool   `json:"affordable"`
}

type PendingOffline struct {
	Coins   int     `json:"coins"`
	Gems    int     `json:"gems"`
	Seconds float64 `json:"seconds"`
}

type UpgradeCosts struct {
	Research int `json:"research"`
	Water    int `json:"water_day"`
}
