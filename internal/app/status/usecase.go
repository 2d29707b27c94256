package status

import (
	"math"
	"time"

	"hugoland/internal/app/store"
	"hugoland/internal/domain/catalog"
	"hugoland/internal/domain/player"
)

type UseCase struct {
	Store  *store.Store
	Engine player.Engine
	Now    func() time.Time
}

// Execute reads the current document with the values a client derives from it.
func (u UseCase) Execute() Response {
	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}
	s := u.Store.Snapshot()

	resp := Response{
		State:      s,
		Stats:      u.Engine.Stats(s),
		Generation: u.Store.Generation(),
		PendingOffline: PendingOffline{
			Coins:   s.Offline.OfflineCoins,
			Gems:    s.Offline.OfflineGems,
			Seconds: s.Offline.OfflineSeconds,
		},
		UpgradeCosts: UpgradeCosts{
			Research: player.ResearchCost(s.Research.Level),
			Water:    player.WaterCost(s.Garden.WaterCost, player.GardenWaterBaseHours),
		},
		ServerTime: now,
	}
	if buff, ok := player.ActiveBuff(s, now); ok {
		active := &ActiveBuff{
			Type:             buff.Type,
			Name:             buff.Name,
			Description:      buff.Description,
			TotalHours:       buff.Hours,
			RemainingSeconds: math.Floor(player.BuffRemaining(s, now).Seconds()),
		}
		// Buffs saved before descriptions were stored take them from the catalog.
		if def, ok := u.Engine.Catalog.MenuSkill(buff.Type); ok {
			if active.Description == "" {
				active.Description = def.Description
			}
			if active.TotalHours == 0 {
				active.TotalHours = def.Hours
			}
		}
		resp.ActiveBuff = active
	}
	resp.SkillTree = skillTree(u.Engine.Catalog, s)
	if r := s.DailyRewards.AvailableReward; r != nil && !r.Claimed {
		daily := *r
		resp.PendingDaily = &daily
	}
	if wait := s.Market.NextRefresh.Sub(now); wait > 0 {
		resp.NextMarketIn = int(wait.Seconds())
	}
	return resp
}

func skillTree(c catalog.Catalog, s player.State) []SkillTreeNode {
	out := make([]SkillTreeNode, 0, len(c.SkillTree))
	for _, n := range c.SkillTree {
		rank := player.SkillRank(s, n.ID)
		out = append(out, SkillTreeNode{
			ID:         n.ID,
			Rank:       rank,
			MaxLevel:   n.MaxLevel,
			Cost:       n.Cost,
			Unlocked:   player.HasSkill(s, n.ID),
			Affordable: rank < n.MaxLevel && s.Progression.SkillPoints >= n.Cost,
		})
	}
	return out
}
